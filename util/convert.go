package util

import (
	"net/url"
	"os"
	"path/filepath"

	"github.com/araddon/dateparse"
	"github.com/napalu/goclip/errs"
	"github.com/napalu/goclip/types"
)

// CreateValue converts a raw option value to the Go value matching valueType:
//
//	ValueString, ValueObject, ValueFile  string
//	ValueNumber                          int64 or float64
//	ValueDate                            time.Time
//	ValueURL                             *url.URL
//	ValueExistingFile                    string (the path must exist)
//	ValueFiles                           []string (glob matches)
func CreateValue(value string, valueType types.ValueType) (any, error) {
	switch valueType {
	case types.ValueString, types.ValueObject, types.ValueFile:
		return value, nil
	case types.ValueNumber:
		num, ok := ParseNumeric(value)
		if !ok {
			return nil, errs.ErrParseNumber.WithArgs(value)
		}
		return num.Value(), nil
	case types.ValueDate:
		t, err := dateparse.ParseAny(value)
		if err != nil {
			return nil, errs.ErrParseDate.WithArgs(value).Wrap(err)
		}
		return t, nil
	case types.ValueURL:
		u, err := url.Parse(value)
		if err != nil {
			return nil, errs.ErrParseURL.WithArgs(value).Wrap(err)
		}
		if !u.IsAbs() || u.Host == "" {
			return nil, errs.ErrParseURL.WithArgs(value)
		}
		return u, nil
	case types.ValueExistingFile:
		if _, err := os.Stat(value); err != nil {
			return nil, errs.ErrFileNotFound.WithArgs(value).Wrap(err)
		}
		return value, nil
	case types.ValueFiles:
		matches, err := filepath.Glob(value)
		if err != nil {
			return nil, errs.ErrFileNotFound.WithArgs(value).Wrap(err)
		}
		return matches, nil
	}

	return nil, errs.ErrUnsupportedType.WithArgs(valueType.String())
}
