package utils

import (
	"io"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
)

func EncodeJson(w io.Writer, v any) error {
	if err := jsoniter.NewEncoder(w).Encode(v); err != nil {
		return errors.WithMessage(err, "encode json")
	}
	return nil
}

func MarshalJsonIndent(v any) ([]byte, error) {
	data, err := jsoniter.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, errors.WithMessage(err, "marshal json")
	}
	return data, nil
}
