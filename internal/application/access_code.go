package application

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/oksasatya/kidprofile-api/pkg/helpers"
)

// AccessCodeLength is the length of a freshly drawn code; a collision adds one character.
const AccessCodeLength = 6

// CodeChecker reports whether an access code is already assigned.
type CodeChecker interface {
	ExistsByCode(ctx context.Context, code string) (bool, error)
}

// AccessCodeGenerator draws uppercase alphanumeric child access codes.
//
// Uniqueness is best effort: when the first draw collides, one extra character is
// appended and the result is not checked again. The unique index on children.code
// rejects the rare second collision.
type AccessCodeGenerator struct {
	entropy io.Reader
}

// NewAccessCodeGenerator uses crypto/rand when entropy is nil.
func NewAccessCodeGenerator(entropy io.Reader) *AccessCodeGenerator {
	return &AccessCodeGenerator{entropy: entropy}
}

func (g *AccessCodeGenerator) Generate(ctx context.Context, existing CodeChecker) (string, error) {
	code, err := helpers.RandomString(g.entropy, AccessCodeLength)
	if err != nil {
		return "", fmt.Errorf("draw code: %w", err)
	}
	code = strings.ToUpper(code)

	taken, err := existing.ExistsByCode(ctx, code)
	if err != nil {
		return "", fmt.Errorf("check code: %w", err)
	}
	if !taken {
		return code, nil
	}

	helpers.MetricCodeCollisions.Add(1)
	extra, err := helpers.RandomString(g.entropy, 1)
	if err != nil {
		return "", fmt.Errorf("draw extra character: %w", err)
	}
	return code + strings.ToUpper(extra), nil
}
