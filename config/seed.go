package config

import (
	"fmt"
	"math"
	"strconv"
)

// SeedValue is a flag.Value holding a PRNG seed. Set rejects anything that
// does not fit in 32 bits instead of wrapping it
type SeedValue uint32

func (s *SeedValue) String() string {
	return strconv.FormatUint(uint64(*s), 10)
}

func (s *SeedValue) Set(v string) error {
	n, err := strconv.ParseUint(v, 10, 32)
	if err != nil {
		return fmt.Errorf("seed %q outside 0..%d", v, uint32(math.MaxUint32))
	}
	*s = SeedValue(n)
	return nil
}
