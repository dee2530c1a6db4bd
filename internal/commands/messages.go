package commands

import "fmt"

const (
	MessageInvalidCommandFormat = "Invalid command format! \n%s"
	MessageUnknownCommand       = "Unknown command"
	MessageInvalidPersonIndex   = "The person index provided is invalid"
	MessagePersonsListed        = "%d persons listed!"
)

// PersonsListedOverview reports how many persons are visible
func PersonsListedOverview(count int) string {
	return fmt.Sprintf(MessagePersonsListed, count)
}

// InvalidCommandFormat prefixes a command's usage with the invalid format notice
func InvalidCommandFormat(usage string) string {
	return fmt.Sprintf(MessageInvalidCommandFormat, usage)
}
