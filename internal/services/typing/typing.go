// Package typing estimates how long a human would take to type a word.
package typing

import (
	"fmt"
	"time"

	"golang.org/x/text/unicode/norm"

	"github.com/nunnu1028/kkutu-korea-hack/internal/model"
)

// MinSpeed is the slowest accepted typing speed in units per minute
const MinSpeed = 60

// doubleUnits are jamo typed with two keystrokes: compound vowels and
// compound finals, in both conjoining and compatibility forms
var doubleUnits = map[rune]struct{}{
	// medial ㅘ ㅙ ㅚ ㅝ ㅞ ㅟ ㅢ
	'\u116A': {}, '\u116B': {}, '\u116C': {}, '\u116F': {}, '\u1170': {}, '\u1171': {}, '\u1174': {},
	// final ㄳ ㄵ ㄶ ㄺ ㄻ ㄼ ㄽ ㄾ ㄿ ㅀ ㅄ
	'\u11AA': {}, '\u11AC': {}, '\u11AD': {}, '\u11B0': {}, '\u11B1': {}, '\u11B2': {},
	'\u11B3': {}, '\u11B4': {}, '\u11B5': {}, '\u11B6': {}, '\u11B9': {},
	// compatibility ㄳ ㄵ ㄶ ㄺ ㄻ ㄼ ㄽ ㄾ ㄿ ㅀ ㅄ
	'ㄳ': {}, 'ㄵ': {}, 'ㄶ': {}, 'ㄺ': {}, 'ㄻ': {}, 'ㄼ': {},
	'ㄽ': {}, 'ㄾ': {}, 'ㄿ': {}, 'ㅀ': {}, 'ㅄ': {},
	// compatibility ㅘ ㅙ ㅚ ㅝ ㅞ ㅟ ㅢ
	'ㅘ': {}, 'ㅙ': {}, 'ㅚ': {}, 'ㅝ': {}, 'ㅞ': {}, 'ㅟ': {}, 'ㅢ': {},
}

// Units counts the keystrokes needed to type word on a two-set Hangul
// keyboard. Characters outside Hangul count as one each.
func Units(word string) int {
	n := 0
	for _, r := range norm.NFD.String(word) {
		if _, ok := doubleUnits[r]; ok {
			n += 2
			continue
		}
		n++
	}
	return n
}

// Delay returns the time needed to type word at speed units per minute.
// Speed is truncated to whole units per second.
func Delay(word string, speed int) (time.Duration, error) {
	if speed < MinSpeed {
		return 0, fmt.Errorf("%w: typing speed %d is below %d", model.ErrInvalidOptions, speed, MinSpeed)
	}
	perSecond := speed / 60
	return time.Duration(Units(word)) * time.Second / time.Duration(perSecond), nil
}
