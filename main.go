package main

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/ytget/reelfeed/internal/config"
	"github.com/ytget/reelfeed/internal/platform"
	"github.com/ytget/reelfeed/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.ytget.reelfeed"
	AppName = "Reelfeed"

	WindowWidth  = 800
	WindowHeight = 600
)

func main() {
	fmt.Printf("Reelfeed v%s starting...\n", version)

	myApp := app.NewWithID(AppID)
	myApp.Settings().SetTheme(ui.NewReelTheme())

	windowTitle := fmt.Sprintf("%s v%s", AppName, version)
	myWindow := myApp.NewWindow(windowTitle)
	myWindow.Resize(fyne.NewSize(WindowWidth, WindowHeight))

	settings := config.NewSettings(myApp)
	if feed := settings.GetFeedFile(); feed != "" {
		if err := platform.CreateDirectoryIfNotExists(platform.FeedDir(feed)); err != nil {
			fmt.Printf("failed to ensure feed dir: %v\n", err)
		}
	}

	root := ui.NewRootUI(myWindow, myApp)
	root.LoadFeed()

	myWindow.ShowAndRun()
}
