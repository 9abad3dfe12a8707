package usecases

import "time"

// MinFormSubmitTime is the minimum plausible human fill time for the contact
// form. Submissions faster than this are treated as automated.
const MinFormSubmitTime = 2000 * time.Millisecond

// HoneypotTripped reports whether the hidden honeypot field carries content.
func HoneypotTripped(companyWebsite string) bool {
	return companyWebsite != ""
}

// SubmittedTooFast reports whether the form was filled faster than
// MinFormSubmitTime, along with the measured duration. A missing or
// non-positive timestamp skips the check rather than failing it: legitimate
// clients with broken clocks must not be silently discarded.
func SubmittedTooFast(formTime *float64, now time.Time) (bool, time.Duration) {
	if formTime == nil || *formTime <= 0 {
		return false, 0
	}
	elapsed := now.Sub(time.UnixMilli(int64(*formTime)))
	return elapsed < MinFormSubmitTime, elapsed
}
