package main

import (
	"log"
	"os"

	"fyne.io/fyne/v2/app"

	"github.com/ytget/desktop-app/internal/cli"
	"github.com/ytget/desktop-app/internal/config"
	"github.com/ytget/desktop-app/internal/ui"
)

// Set during build via -ldflags "-X main.version=X.Y.Z -X main.updateOwner=... -X main.updateRepo=..."
var (
	version     = "dev"
	updateOwner = "ytget"
	updateRepo  = "desktop-app"
	binaryName  = "desktop-app"
)

const (
	AppID   = "com.ytget.desktop-app"
	AppName = "Desktop Application"
)

func main() {
	build := cli.BuildInfo{
		Version: version,
		Owner:   updateOwner,
		Repo:    updateRepo,
		Binary:  binaryName,
	}
	root := cli.NewRootCommand(build, func() error {
		return runGUI(build)
	})
	os.Exit(cli.Execute(root, os.Stderr))
}

func runGUI(build cli.BuildInfo) error {
	log.Printf("%s v%s starting...", AppName, build.Version)

	myApp := app.NewWithID(AppID)
	myWindow := myApp.NewWindow(AppName)

	settings := config.NewSettings(myApp, config.UpdateSource{
		Owner:  build.Owner,
		Repo:   build.Repo,
		Binary: build.Binary,
	})
	updateSvc := ui.NewSettingsUpdater(settings, build.Version)

	rootUI := ui.NewRootUI(myWindow, myApp, settings, updateSvc, build.Version)
	myApp.Lifecycle().SetOnStarted(rootUI.StartupCheck)

	myWindow.ShowAndRun()
	log.Printf("%s stopped", AppName)
	return nil
}
