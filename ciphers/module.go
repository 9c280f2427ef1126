package ciphers

import (
	"github.com/reusee/dscope"
	"github.com/reusee/pagehook/alphabets"
	"github.com/reusee/pagehook/logs"
)

type Module struct {
	dscope.Module
	Alphabets alphabets.Module
	Logs      logs.Module
}

// Decoder decodes with the configured table.
type Decoder func(cipher string, key int) (string, error)

func (Module) Decoder(
	table alphabets.Table,
	logger logs.Logger,
) Decoder {
	return func(cipher string, key int) (string, error) {
		plain, err := Decode(table, cipher, key)
		if err != nil {
			// logged by the caller that owns the span
			return "", err
		}
		logger.Debug("decoded",
			"key", key,
			"cipher_len", len(cipher),
			"plain_len", len(plain),
		)
		return plain, nil
	}
}

// Encoder encodes with the configured table.
type Encoder func(plain string, key int) (string, error)

func (Module) Encoder(
	table alphabets.Table,
) Encoder {
	return func(plain string, key int) (string, error) {
		return Encode(table, plain, key)
	}
}
