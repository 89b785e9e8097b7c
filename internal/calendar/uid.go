package calendar

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// DefaultUIDDomain is the domain suffix of generated UIDs.
const DefaultUIDDomain = "wildhacks.net"

// IDSource supplies the UID for the event at a position in a document.
type IDSource interface {
	ID(index int) string
}

// IDFunc adapts a function to IDSource.
type IDFunc func(index int) string

// ID implements IDSource.
func (f IDFunc) ID(index int) string {
	return f(index)
}

// RandomIDs builds UIDs of the form <unix-millis>-<index>-<random>@<domain>,
// unique within a document and across generations.
type RandomIDs struct {
	domain string
	now    func() time.Time
}

// NewRandomIDs returns an IDSource for domain.
func NewRandomIDs(domain string) *RandomIDs {
	if domain == "" {
		domain = DefaultUIDDomain
	}
	return &RandomIDs{domain: domain, now: time.Now}
}

// ID implements IDSource.
func (r *RandomIDs) ID(index int) string {
	return fmt.Sprintf("%d-%d-%s@%s", r.now().UnixMilli(), index, randomToken(), r.domain)
}

// randomToken returns nine random lowercase hex characters.
func randomToken() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")[:9]
}
