package utils

import (
	"fmt"
	"math"
)

// CheckMultiplyOverflow checks if multiplying two uint64 values would overflow.
// Returns an error if overflow would occur.
func CheckMultiplyOverflow(a, b uint64) error {
	if a == 0 || b == 0 {
		return nil // No overflow when either is zero
	}

	if a > math.MaxUint64/b {
		return fmt.Errorf("multiplication overflow: %d * %d exceeds uint64 max", a, b)
	}

	return nil
}

// SafeMultiply multiplies two uint64 values and returns the result if no overflow occurs.
// Returns 0 and an error if overflow would occur.
func SafeMultiply(a, b uint64) (uint64, error) {
	if err := CheckMultiplyOverflow(a, b); err != nil {
		return 0, err
	}
	return a * b, nil
}

// ValidateBufferSize validates that a size read off the wire is within reasonable
// limits before it is used to allocate memory.
func ValidateBufferSize(size, maxSize uint64, description string) error {
	if size > maxSize {
		return fmt.Errorf("%s: size %d exceeds maximum %d", description, size, maxSize)
	}

	return nil
}

// Wire-controlled size limits. A resource-section descriptor count or a
// section's declared payload size is attacker/firmware-controlled and read
// directly off the stream before any allocation, so it is checked against
// these ceilings the same way the descriptor count is checked before the
// count*24 descriptor table is sized.
const (
	// MaxSectionPayload bounds a single section's declared size.
	MaxSectionPayload = 256 * 1024 * 1024 // 256 MiB

	// MaxResourceCount bounds a resource section's declared descriptor count.
	MaxResourceCount = 1_000_000
)
