package messaging

import (
	"fmt"
	"time"
)

const dueDateFormat = "02 Jan 2006"

func upcomingFeeBody(name, gymName string, due time.Time) string {
	return fmt.Sprintf(
		"Hi %s, this is a friendly reminder from %s that your monthly fee is due on %s. Thank you!",
		name, gymName, due.Format(dueDateFormat))
}

func overdueFeeBody(name, gymName string, due time.Time) string {
	return fmt.Sprintf(
		"Hi %s, this is a reminder from %s that your monthly fee was due on %s. Please submit it at your earliest convenience.",
		name, gymName, due.Format(dueDateFormat))
}

func welcomeBody(name, gymName string) string {
	return fmt.Sprintf(
		"Welcome to %s, %s! We're excited to have you join our community. Your fitness journey starts now!",
		gymName, name)
}
