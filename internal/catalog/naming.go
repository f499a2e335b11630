package catalog

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

const settingsActionPrefix = "ACTION_"

// SimpleName returns the trailing component of a dotted type name, or the
// whole (trimmed) name when it has no dot.
func SimpleName(typeName string) string {
	name := strings.TrimSpace(typeName)
	if i := strings.LastIndexByte(name, '.'); i >= 0 {
		return name[i+1:]
	}
	return name
}

// AccessorName lowercases the first character of the simple name:
// android.os.PowerManager becomes powerManager.
func AccessorName(typeName string) string {
	simple := SimpleName(typeName)
	r, size := utf8.DecodeRuneInString(simple)
	if size == 0 {
		return ""
	}
	return string(unicode.ToLower(r)) + simple[size:]
}

// LauncherName builds the settings launcher identifier for an action
// constant: ACTION_WIFI_IP_SETTINGS becomes openWifiIpSettings.
func LauncherName(action string) string {
	trimmed := strings.TrimPrefix(strings.TrimSpace(action), settingsActionPrefix)
	var b strings.Builder
	b.Grow(len(trimmed) + 4)
	b.WriteString("open")
	for _, segment := range strings.Split(trimmed, "_") {
		r, size := utf8.DecodeRuneInString(segment)
		if size == 0 {
			continue
		}
		b.WriteRune(unicode.ToUpper(r))
		b.WriteString(strings.ToLower(segment[size:]))
	}
	return b.String()
}

// SimpleName is the unqualified type the accessor casts to.
func (e ServiceEntry) SimpleName() string { return SimpleName(e.TypeName) }

// AccessorName is the generated extension function name.
func (e ServiceEntry) AccessorName() string { return AccessorName(e.TypeName) }

// LauncherName is the generated extension function name.
func (e SettingsEntry) LauncherName() string { return LauncherName(e.Action) }
