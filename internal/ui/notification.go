package ui

import (
	"os"
	"os/exec"
	"strings"
)

// Icons of the freedesktop icon naming spec.
const (
	IconDialogError = "dialog-error"
	IconDialogInfo  = "dialog-information"
	IconDialogWarn  = "dialog-warning"

	UrgencyLow      = "low"
	UrgencyNormal   = "normal"
	UrgencyCritical = "critical"
)

const appName = "tpfand"

func NotifyInfo(title, text string) {
	NotifySend(UrgencyLow, title, text, IconDialogInfo)
}

func NotifyWarn(title, text string) {
	NotifySend(UrgencyNormal, title, text, IconDialogWarn)
}

func NotifyError(title, text string) {
	NotifySend(UrgencyCritical, title, text, IconDialogError)
}

// NotifySend shows a desktop notification to the user owning the current
// X display. The daemon runs as root, so notify-send is run through sudo.
func NotifySend(urgency, title, text, icon string) {
	display, exists := os.LookupEnv("DISPLAY")
	if !exists {
		Debug("Cannot send notification, missing env variable 'DISPLAY'")
		return
	}

	output, err := exec.Command("who").Output()
	if err != nil {
		Warning("Cannot send notification, unable to find user of display session: %v", err)
		return
	}
	user := findDisplayUser(string(output), display)
	if len(user) <= 0 {
		Warning("Cannot send notification, unable to detect user of display %s", display)
		return
	}

	output, err = exec.Command("id", "-u", user).Output()
	uid := strings.TrimSpace(string(output))
	if err != nil || len(uid) <= 0 {
		Warning("Cannot send notification, unable to detect id of user %s: %v", user, err)
		return
	}

	args := notifySendArgs(user, uid, display, urgency, icon, title, text)
	err = exec.Command("sudo", args...).Run()
	if err != nil {
		Error("Error sending notification: %v", err)
	}
}

// findDisplayUser returns the login of the first session in the output of
// who(1) that is attached to display.
func findDisplayUser(who string, display string) string {
	for _, line := range strings.Split(who, "\n") {
		fields := strings.Fields(line)
		if len(fields) <= 0 {
			continue
		}
		if strings.Contains(line, "("+display+")") || strings.Contains(line, " "+display+" ") {
			return fields[0]
		}
	}
	return ""
}

func notifySendArgs(user, uid, display, urgency, icon, title, text string) []string {
	return []string{
		"-u", user,
		"DISPLAY=" + display,
		"DBUS_SESSION_BUS_ADDRESS=unix:path=/run/user/" + uid + "/bus",
		"notify-send",
		"-a", appName,
		"-u", urgency,
		"-i", icon,
		title, text,
	}
}
