package profile

import (
	"bytes"
	"encoding/json"
	"strconv"
	"unicode/utf16"

	"nutriplan/internal/domain/entity"
)

// canonicalProfile fixes the serialized field order of a fingerprint.
type canonicalProfile struct {
	Age       int     `json:"age"`
	Gender    string  `json:"gender"`
	LifeStage string  `json:"lifeStage"`
	Goal      string  `json:"goal"`
	Weight    float64 `json:"weight"`
	Duration  int     `json:"duration"`
	Language  string  `json:"language"`
}

// Canonical returns the compact JSON the fingerprint is computed over.
func Canonical(p entity.UserProfile) string {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	// encoding a struct of plain fields cannot fail
	_ = enc.Encode(canonicalProfile{
		Age:       p.Age,
		Gender:    string(p.Gender),
		LifeStage: string(p.LifeStage),
		Goal:      string(p.Goal),
		Weight:    p.Weight,
		Duration:  p.Duration,
		Language:  string(p.Language),
	})

	return string(bytes.TrimRight(buf.Bytes(), "\n"))
}

// Seed is the 32-bit rolling hash (h*31 + c over UTF-16 code units) of
// the canonical profile, as a non-negative number.
func Seed(p entity.UserProfile) int64 {
	var hash int32
	for _, unit := range utf16.Encode([]rune(Canonical(p))) {
		hash = (hash << 5) - hash + int32(unit)
	}

	seed := int64(hash)
	if seed < 0 {
		seed = -seed
	}

	return seed
}

// Fingerprint identifies the semantic content of a profile. Equal field
// values give equal fingerprints across processes and deployments.
func Fingerprint(p entity.UserProfile) string {
	return strconv.FormatInt(Seed(p), 10)
}
