package file

import "strings"

// chord names may contain a slash for the bass note
var unsafe = strings.NewReplacer("/", "_", "\\", "_", " ", "_", ":", "_")

func baseName(name string) string {
	return unsafe.Replace(name)
}

func DiagramName(name string) string {
	return baseName(name) + ".png"
}

func MIDIName(name string) string {
	return baseName(name) + ".mid"
}
