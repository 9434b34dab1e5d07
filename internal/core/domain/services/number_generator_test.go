package services_test

import (
	"regexp"
	"strconv"
	"strings"
	"testing"

	"commerce/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateOrderNumber(t *testing.T) {
	t.Run("pads_id_to_eight_digits", func(t *testing.T) {
		number := services.GenerateOrderNumber(42, "")

		require.Regexp(t, regexp.MustCompile(`^0000-0042-\d{4}$`), number)
	})

	t.Run("large_ids_keep_all_digits", func(t *testing.T) {
		number := services.GenerateOrderNumber(1234567890, "")

		// 10-digit id: 4-digit group plus the remaining 6 digits.
		require.Regexp(t, regexp.MustCompile(`^1234-567890-\d{4}$`), number)
	})

	t.Run("prefix_is_prepended", func(t *testing.T) {
		number := services.GenerateOrderNumber(7, "WEB")

		require.Regexp(t, regexp.MustCompile(`^WEB-0000-0007-\d{4}$`), number)
	})

	t.Run("suffix_stays_in_range", func(t *testing.T) {
		for range 200 {
			number := services.GenerateOrderNumber(1, "")
			parts := strings.Split(number, "-")
			require.Len(t, parts, 3)

			suffix, err := strconv.Atoi(parts[2])
			require.NoError(t, err)
			assert.GreaterOrEqual(t, suffix, 1000)
			assert.LessOrEqual(t, suffix, 9999)
		}
	})
}
