package genomeplotter

import (
	"compress/bzip2"
	"compress/gzip"
	"compress/zlib"
	"io"
	"os"

	"github.com/carbocation/pfx"
	"github.com/krolaw/zipstream"
	"github.com/xi2/xz"
)

type DataType byte

const (
	DataTypeInvalid DataType = iota
	DataTypeNoCompression
	DataTypeGzip
	DataTypeZip
	DataTypeXZ
	DataTypeZ
	DataTypeBZip2
)

var byteCodeSigs = map[DataType][]byte{
	DataTypeGzip:  {0x1f, 0x8b, 0x08},
	DataTypeZip:   {0x50, 0x4b, 0x03, 0x04},
	DataTypeXZ:    {0xfd, 0x37, 0x7a, 0x58, 0x5a, 0x00},
	DataTypeZ:     {0x1f, 0x9d},
	DataTypeBZip2: {0x42, 0x5a, 0x68},
}

// DetectDataType attempts to detect the data type of a stream by checking
// against a set of known data types. Byte code signatures from
// https://stackoverflow.com/a/19127748/199475
func DetectDataType(r io.Reader) (DataType, error) {
	buff := make([]byte, 6)
	if _, err := r.Read(buff); err != nil {
		return DataTypeInvalid, err
	}

	// Match known signatures
Outer:
	for dt, sig := range byteCodeSigs {
		for position := range sig {
			if buff[position] != sig[position] {
				continue Outer
			}
		}
		return dt, nil
	}

	return DataTypeNoCompression, nil
}

// Open opens the named file and transparently decompresses it when it carries
// a known compression signature. The processed data files consumed by the
// plotting commands are conventionally gzipped TSVs, but plain files work too.
func Open(path string) (io.ReadCloser, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, pfx.Err(err)
	}

	rc, err := maybeDecompress(f)
	if err != nil {
		f.Close()
		return nil, pfx.Err(err)
	}

	return rc, nil
}

func maybeDecompress(f *os.File) (io.ReadCloser, error) {
	dt, err := DetectDataType(f)
	if err != nil {
		return nil, err
	}
	// Reset your original reader
	if _, err := f.Seek(0, 0); err != nil {
		return nil, err
	}

	switch dt {
	case DataTypeGzip:
		gz, err := gzip.NewReader(f)
		if err != nil {
			return nil, err
		}
		return &compressedFile{f: f, Reader: gz}, nil
	case DataTypeZip:
		return &compressedFile{f: f, Reader: zipstream.NewReader(f)}, nil
	case DataTypeBZip2:
		return &compressedFile{f: f, Reader: bzip2.NewReader(f)}, nil
	case DataTypeXZ:
		reader, err := xz.NewReader(f, 0)
		if err != nil {
			return nil, err
		}
		return &compressedFile{f: f, Reader: reader}, nil
	case DataTypeZ:
		zr, err := zlib.NewReader(f)
		if err != nil {
			return nil, err
		}
		return &compressedFile{f: f, Reader: zr}, nil
	}

	// No data type detected. For now, we assume this is uncompressed.
	return f, nil
}

// compressedFile closes the underlying file along with the decompressor.
type compressedFile struct {
	io.Reader
	f *os.File
}

func (c *compressedFile) Close() error {
	return c.f.Close()
}
