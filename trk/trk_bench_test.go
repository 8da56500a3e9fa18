package trk

import (
	"fmt"
	"testing"

	"github.com/arloliu/trklog/format"
)

func benchmarkLog(b *testing.B, rows int, comp format.CompressionType) []byte {
	b.Helper()

	enc, err := NewEncoder(WithEncoderCompression(comp))
	if err != nil {
		b.Fatal(err)
	}
	for i := range 8 {
		if err := enc.AddVariable(fmt.Sprintf("dyn.body.state[%d]", i), "m", format.IDDouble); err != nil {
			b.Fatal(err)
		}
	}

	row := make([]float64, 8)
	for r := range rows {
		for i := range row {
			row[i] = float64(r) * 0.01 * float64(i+1)
		}
		if err := enc.AppendRow(row...); err != nil {
			b.Fatal(err)
		}
	}

	data, err := enc.Finish()
	if err != nil {
		b.Fatal(err)
	}

	return data
}

func BenchmarkDecoder_Decode(b *testing.B) {
	for _, rows := range []int{100, 10000} {
		for _, comp := range []format.CompressionType{format.CompressionNone, format.CompressionZstd} {
			data := benchmarkLog(b, rows, comp)

			b.Run(fmt.Sprintf("rows=%d/%s", rows, comp), func(b *testing.B) {
				b.ReportAllocs()
				for b.Loop() {
					dec, err := NewDecoder(data, WithCompression(comp))
					if err != nil {
						b.Fatal(err)
					}
					if _, err := dec.Decode(); err != nil {
						b.Fatal(err)
					}
				}
			})
		}
	}
}

func BenchmarkEncoder_AppendRow(b *testing.B) {
	enc, err := NewEncoder()
	if err != nil {
		b.Fatal(err)
	}
	for i := range 8 {
		if err := enc.AddVariable(fmt.Sprintf("v%d", i), "", format.IDDouble); err != nil {
			b.Fatal(err)
		}
	}

	row := []float64{1, 2, 3, 4, 5, 6, 7, 8}

	b.ReportAllocs()
	for b.Loop() {
		if err := enc.AppendRow(row...); err != nil {
			b.Fatal(err)
		}
	}
}
