package corpus

import (
	"strconv"
	"strings"

	bderrors "github.com/FocuswithJustin/bibledb/core/errors"
)

// KeySeparator splits a composite "chapter:verse" key.
const KeySeparator = ":"

// ParseVerseKey extracts the verse number from a composite key such as
// "3:7". The chapter part is not inspected: "9:7" yields 7 too. kind names
// the entry type ("verse" or "comment") in errors.
func ParseVerseKey(kind, key string) (int, error) {
	parts := strings.Split(key, KeySeparator)
	if len(parts) < 2 {
		return 0, bderrors.NewShape(kind, key, `missing ":" separator`)
	}
	n, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return 0, &bderrors.ShapeError{
			Kind:    kind,
			Key:     key,
			Message: "verse number " + strconv.Quote(parts[1]) + " is not an integer",
			Err:     err,
		}
	}
	return n, nil
}

// ParseChapterKey parses the key of a chapters object.
func ParseChapterKey(key string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(key))
	if err != nil {
		return 0, &bderrors.ShapeError{
			Kind:    "chapter",
			Key:     key,
			Message: "chapter number is not an integer",
			Err:     err,
		}
	}
	return n, nil
}
