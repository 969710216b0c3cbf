package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
)

func (a *App) getStatus() string {
	sess, err := a.gate.Current()
	if err != nil {
		return ""
	}
	return fmt.Sprintf("(%s %s)", sess.DisplayName, sess.Role)
}

// Root runs the command loop. Handler errors are logged and the loop keeps
// going; only EOF or an explicit exit ends it.
func (a *App) Root(ctx context.Context) {
	fmt.Println("Springing Stars dashboard (type 'help' for commands)")
	scanner := bufio.NewScanner(os.Stdin)

	if !a.isLoggedIn() {
		if err := a.Login(ctx); err != nil {
			a.log.Error(ctx, "login failed", "error", err)
		}
	}

	for {
		fmt.Printf("dash %s> ", a.getStatus())
		if !scanner.Scan() {
			break
		}
		parts := strings.Fields(scanner.Text())
		if len(parts) == 0 {
			continue
		}

		var err error
		switch cmd := parts[0]; cmd {
		case "help":
			a.printHelp()
		case "login":
			err = a.Login(ctx)
		case "logout":
			err = a.Logout(ctx)
		case "whoami":
			err = a.whoAmI()

		case "profile":
			err = a.showProfile(ctx)
		case "editprofile":
			err = a.editProfile(ctx)
		case "avatar":
			err = a.setAvatar(ctx)

		case "events":
			err = a.listEvents(ctx)
		case "addevent":
			err = a.addEvent(ctx)
		case "delevent":
			err = a.removeEvent(ctx)
		case "reschedule":
			err = a.rescheduleEvent(ctx)
		case "exportevents":
			err = a.exportEvents(ctx)

		case "settings":
			err = a.showSettings(ctx)
		case "set":
			err = a.setSetting(ctx)
		case "exportsettings":
			err = a.exportSettings(ctx)

		case "reports":
			err = a.listReports(ctx)
		case "upload":
			err = a.uploadReport(ctx)
		case "genreport":
			err = a.generateReport(ctx)
		case "markready":
			err = a.markReportReady(ctx)
		case "download":
			err = a.downloadReport(ctx)
		case "delreport":
			err = a.deleteReport(ctx)
		case "exportreports":
			err = a.exportReports(ctx)
		case "stats":
			err = a.reportStats(ctx)

		case "notifications":
			err = a.listNotifications(ctx)
		case "markread":
			err = a.markNotificationRead(ctx)
		case "approve":
			err = a.decideNotification(ctx, "approved")
		case "reject":
			err = a.decideNotification(ctx, "rejected")

		case "exit", "quit":
			fmt.Println("Bye!")
			return
		default:
			fmt.Println("Unknown command:", cmd)
		}

		if err != nil {
			a.log.Error(ctx, "command failed", "error", err)
			fmt.Println("Error:", err.Error())
		}
	}
}

func (a *App) printHelp() {
	if !a.isLoggedIn() {
		fmt.Println("Available commands: login, settings, exit")
		return
	}
	fmt.Println("Available commands:")
	fmt.Println("  profile, editprofile, avatar")
	fmt.Println("  events, addevent, delevent, reschedule, exportevents")
	fmt.Println("  settings, set, exportsettings")
	fmt.Println("  reports, upload, genreport, markready, download, delreport, exportreports, stats")
	fmt.Println("  notifications, markread, approve, reject")
	fmt.Println("  whoami, logout, exit")
}
