package ticketcode

import (
	"fmt"
	"math/rand"
	"regexp"
	"time"
)

// Format: EVT-{EVENT_ID}-{TIMESTAMP_MILLIS}-{RANDOM_4_DIGITS}
const Prefix = "EVT"

var codePattern = regexp.MustCompile(`^EVT-\d+-\d+-\d{4}$`)

func Generate(eventID int64) string {
	timestamp := time.Now().UnixMilli()
	randomDigits := 1000 + rand.Intn(9000)

	return fmt.Sprintf("%s-%d-%d-%04d", Prefix, eventID, timestamp, randomDigits)
}

func IsValid(code string) bool {
	if code == "" {
		return false
	}
	return codePattern.MatchString(code)
}
