package trk

import (
	"fmt"

	"github.com/arloliu/trklog/errs"
	"github.com/arloliu/trklog/format"
	"github.com/arloliu/trklog/internal/options"
	"github.com/arloliu/trklog/section"
)

// EncoderConfig holds the Encoder settings.
type EncoderConfig struct {
	registry    *format.Registry
	formatTag   section.FormatTag
	compression format.CompressionType
}

func newEncoderConfig(opts ...EncoderOption) (*EncoderConfig, error) {
	cfg := &EncoderConfig{
		registry:    format.DefaultRegistry(),
		formatTag:   section.NewFormatTag(section.DefaultFormatTag),
		compression: format.CompressionNone,
	}

	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	return cfg, nil
}

// EncoderOption represents a functional option for configuring an EncoderConfig.
type EncoderOption = options.Option[*EncoderConfig]

// WithEncoderRegistry sets the registry used to validate type identifiers.
func WithEncoderRegistry(reg *format.Registry) EncoderOption {
	return options.New(func(c *EncoderConfig) error {
		if reg == nil {
			return fmt.Errorf("registry must not be nil")
		}
		c.registry = reg

		return nil
	})
}

// WithFormatTag sets the 10-byte format tag written at the start of the log.
// Shorter tags are padded with NUL bytes. The default is section.DefaultFormatTag.
func WithFormatTag(tag string) EncoderOption {
	return options.New(func(c *EncoderConfig) error {
		if len(tag) > section.FormatTagSize {
			return fmt.Errorf("format tag %q is longer than %d bytes", tag, section.FormatTagSize)
		}
		c.formatTag = section.NewFormatTag(tag)

		return nil
	})
}

// WithEncoderCompression compresses the complete output with the given codec.
func WithEncoderCompression(comp format.CompressionType) EncoderOption {
	return options.New(func(c *EncoderConfig) error {
		if !comp.IsValid() {
			return fmt.Errorf("%w: %s", errs.ErrInvalidCompression, comp)
		}
		c.compression = comp

		return nil
	})
}
