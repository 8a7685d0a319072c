package randbp

import (
	"fmt"
)

// Base64Runes are all the runes allowed in standard and url safe base64
// encodings.
//
// This is a common, safe to use set of runes to be used with
// GenerateRandomString.
const Base64Runes = `ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789-_+/=`

// RandomStringArgs defines the args used by GenerateRandomString.
type RandomStringArgs struct {
	// Required. Must be greater than MinLength.
	MaxLength int

	// Optional. Default is 0, which means it could generate empty strings.
	// Must not be negative.
	MinLength int

	// Optional. If empty []rune(randbp.Base64Runes) will be used instead.
	Runes []rune

	// Optional. If nil the shared generator will be used instead,
	// through the package level functions.
	//
	// Tests implementing testing/quick.Generator usually pass a seeded
	// generator here to get reproducible strings.
	R Generator
}

// GenerateRandomString generates a random string with length
// [MinLength, MaxLength), and all characters limited to Runes.
//
// It returns an error wrapping ErrInvalidArgument when MinLength is negative
// or MaxLength <= MinLength.
//
// It could be used to help implement testing/quick.Generator interface.
func GenerateRandomString(args RandomStringArgs) (string, error) {
	if args.MinLength < 0 {
		return "", fmt.Errorf("randbp: negative MinLength %d: %w", args.MinLength, ErrInvalidArgument)
	}
	g := args.R
	if g == nil {
		g = sharedFuncs{}
	}
	runes := args.Runes
	if len(runes) == 0 {
		runes = []rune(Base64Runes)
	}
	n, err := g.IntRange(args.MinLength, args.MaxLength)
	if err != nil {
		return "", fmt.Errorf("randbp: GenerateRandomString length: %w", err)
	}
	ret := make([]rune, n)
	for i := range ret {
		idx, err := g.IntN(len(runes))
		if err != nil {
			return "", err
		}
		ret[i] = runes[idx]
	}
	return string(ret), nil
}
