package main

import (
	"log"

	"fyne.io/fyne/v2"

	"termprefs/core"
	"termprefs/internal/debuglog"
	"termprefs/ui"
)

// main is the application's entry point. It simply creates and runs the AppController.
func main() {
	controller, err := core.NewAppController()
	if err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}

	controller.MainWindow = controller.Application.NewWindow("Terminal Profile Preferences")

	app := ui.NewApp(controller.MainWindow, controller)
	controller.MainWindow.SetContent(app.GetContent())
	controller.MainWindow.Resize(fyne.NewSize(460, 560))
	controller.MainWindow.CenterOnScreen()

	controller.MainWindow.ShowAndRun()
	// The code below executes only after ShowAndRun() finishes.
	log.Println("Application shutting down.")
	app.Close()
	controller.GracefulExit()

	debuglog.CloseWithLog("main log file", controller.MainLogFile)
}
