package typing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nunnu1028/kkutu-korea-hack/internal/model"
)

func TestUnits(t *testing.T) {
	cases := map[string]int{
		"":      0,
		"사자":    4,
		"사과":    5, // ㅅ ㅏ ㄱ ㅘ(2)
		"닭":     4, // ㄷ ㅏ ㄺ(2)
		"값":     4, // ㄱ ㅏ ㅄ(2)
		"의사":    5, // ㅇ ㅢ(2) ㅅ ㅏ
		"까치":    4, // ㄲ ㅏ ㅊ ㅣ
		"abc":   3,
		"ㄳ":     2,
		"ㅏ":     1,
		"사과 ㄱ": 7,
	}
	for word, want := range cases {
		assert.Equal(t, want, Units(word), "units of %q", word)
	}
}

func TestDelay(t *testing.T) {
	d, err := Delay("사과", 1000)
	require.NoError(t, err)
	// 1000/min truncates to 16/s; 5 units
	assert.Equal(t, 5*time.Second/16, d)

	d, err = Delay("사자", 60)
	require.NoError(t, err)
	assert.Equal(t, 4*time.Second, d)

	d, err = Delay("", 600)
	require.NoError(t, err)
	assert.Zero(t, d)
}

func TestDelayRejectsSlowSpeed(t *testing.T) {
	_, err := Delay("사과", 59)
	assert.ErrorIs(t, err, model.ErrInvalidOptions)

	_, err = Delay("사과", 0)
	assert.ErrorIs(t, err, model.ErrInvalidOptions)
}
