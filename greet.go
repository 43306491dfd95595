package main

import "fmt"

// greet formats the greeting returned to the frontend. name is inserted verbatim.
func greet(name string) string {
	return fmt.Sprintf("Hello, %s! You've been greeted from Go!", name)
}
