// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

package command

import (
	"errors"
	"strings"

	"github.com/staranto/tripcache/internal/cache"
)

type FlagValidatorType func(any) error

func FlagValidators(value any, validators ...FlagValidatorType) error {
	for _, v := range validators {
		if err := v(value); err != nil {
			return err
		}
	}
	return nil
}

// JammedFlagValidator verifies that the arg following a flag does not begin
// with '--'.  urfave/cli allows this and I don't see how to turn it off.
func JammedFlagValidator(value any) error {
	if strings.HasPrefix(value.(string), "--") {
		return errors.New("must not begin with '--'")
	}
	return nil
}

// CacheLocationValidator rejects s3:// locations that lack a bucket or key.
// Local paths are not checked here; a bad path surfaces when the cache is
// loaded or flushed.
func CacheLocationValidator(value any) error {
	s := value.(string)
	if !strings.HasPrefix(s, "s3://") {
		return nil
	}
	_, _, err := cache.ParseS3Location(s)
	return err
}
