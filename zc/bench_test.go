package zc

import (
	"encoding/base64"
	"testing"

	"github.com/rawbytedev/b64"
	"lukechampine.com/frand"
)

var benchSrc = frand.Bytes(1024)

func Benchmark_Append_zc(b *testing.B) {
	buf := make([]byte, 0, b64.EncodedLen(len(benchSrc)))
	b.ReportAllocs()
	b.SetBytes(int64(len(benchSrc)))
	for i := 0; i < b.N; i++ {
		_ = Append(buf, benchSrc)
	}
}

func Benchmark_Append_engine(b *testing.B) {
	dst := make([]byte, b64.EncodedLen(len(benchSrc)))
	b.ReportAllocs()
	b.SetBytes(int64(len(benchSrc)))
	for i := 0; i < b.N; i++ {
		_, _ = b64.Encode(dst, benchSrc)
	}
}

func Benchmark_Append_stdlib(b *testing.B) {
	dst := make([]byte, base64.StdEncoding.EncodedLen(len(benchSrc)))
	b.ReportAllocs()
	b.SetBytes(int64(len(benchSrc)))
	for i := 0; i < b.N; i++ {
		base64.StdEncoding.Encode(dst, benchSrc)
	}
}
