// Package clock runs the alarm clock: it keeps the robot's face showing the
// current time and, when the alarm time is crossed, takes the robot off its
// charger, announces the time and backs it onto the charger again.
package clock
