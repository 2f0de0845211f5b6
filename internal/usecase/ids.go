package usecase

import (
	"fmt"
	"math/rand"
)

// newRecordID generates the historical record id shape: "ID-" followed by 13
// digits. Kept for compatibility with rows imported from the spreadsheet era.
func newRecordID() string {
	return fmt.Sprintf("ID-%d", 1000000000000+rand.Int63n(9000000000000))
}
