package trk

import (
	"fmt"

	"github.com/arloliu/trklog/errs"
	"github.com/arloliu/trklog/format"
	"github.com/arloliu/trklog/internal/options"
)

// DecoderConfig holds the settings shared by Decoder and RowDecoder.
type DecoderConfig struct {
	registry    *format.Registry
	compression format.CompressionType
	unsupported map[format.TypeTag]struct{}
}

func newDecoderConfig(opts ...DecoderOption) (*DecoderConfig, error) {
	cfg := &DecoderConfig{
		registry:    format.DefaultRegistry(),
		compression: format.CompressionNone,
	}

	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Registry returns the registry used to resolve type identifiers.
func (c *DecoderConfig) Registry() *format.Registry {
	return c.registry
}

// Compression returns the compression applied to the input.
func (c *DecoderConfig) Compression() format.CompressionType {
	return c.compression
}

// IsUnsupported reports whether rows containing tag are rejected.
func (c *DecoderConfig) IsUnsupported(tag format.TypeTag) bool {
	_, ok := c.unsupported[tag]
	return ok
}

// DecoderOption represents a functional option for configuring a DecoderConfig.
type DecoderOption = options.Option[*DecoderConfig]

// WithRegistry sets the registry used to resolve descriptor type identifiers.
//
// The default is format.DefaultRegistry().
func WithRegistry(reg *format.Registry) DecoderOption {
	return options.New(func(c *DecoderConfig) error {
		if reg == nil {
			return fmt.Errorf("registry must not be nil")
		}
		c.registry = reg

		return nil
	})
}

// WithCompression declares the compression applied to the whole input.
//
// The default is format.CompressionNone.
func WithCompression(comp format.CompressionType) DecoderOption {
	return options.New(func(c *DecoderConfig) error {
		if !comp.IsValid() {
			return fmt.Errorf("%w: %s", errs.ErrInvalidCompression, comp)
		}
		c.compression = comp

		return nil
	})
}

// WithUnsupportedTypes marks type tags whose row fields must not be decoded.
//
// Descriptors of these types are still read from the header, but the first row
// field of such a type fails with errs.ErrUnsupportedType at that field's offset.
func WithUnsupportedTypes(tags ...format.TypeTag) DecoderOption {
	return options.New(func(c *DecoderConfig) error {
		for _, tag := range tags {
			if !tag.IsValid() {
				return fmt.Errorf("%w: %s", errs.ErrUnsupportedType, tag)
			}
			if c.unsupported == nil {
				c.unsupported = make(map[format.TypeTag]struct{}, len(tags))
			}
			c.unsupported[tag] = struct{}{}
		}

		return nil
	})
}
