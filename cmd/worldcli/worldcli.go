// Command worldcli is an interactive shell around a single updater.World,
// for exercising detection/geometry ingestion and camera management by
// hand.
package main

import (
	"bufio"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/koron0902/Robocup-SSL-AI/filter/observer"
	"github.com/koron0902/Robocup-SSL-AI/model"
	"github.com/koron0902/Robocup-SSL-AI/updater"
	"github.com/koron0902/Robocup-SSL-AI/vision"
)

// Global state shared by all commands.
// TODO: explore if there are ways to do this without global variable in Go
var (
	world  *updater.World
	logger = log.NewWithOptions(os.Stderr, log.Options{ReportTimestamp: true})
)

var rootCmd = &cobra.Command{
	Use:   "worldcli",
	Short: "An interactive world-state updater shell",
	Long: `A command-line application that feeds synthetic detection and
geometry messages into a world-state updater and lets you inspect the
fused snapshot as it changes.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("worldcli invoked. Use the available commands to feed and inspect the world.")
	},
}

var ingestBallCmd = &cobra.Command{
	Use:   "ingest-ball [camera_id] [x] [y] [confidence]",
	Short: "Ingest a detection frame containing a single ball observation",
	Args:  cobra.ExactArgs(4),
	Run: func(cmd *cobra.Command, args []string) {
		cam, errCam := strconv.Atoi(args[0])
		x, errX := strconv.ParseFloat(args[1], 64)
		y, errY := strconv.ParseFloat(args[2], 64)
		conf, errC := strconv.ParseFloat(args[3], 64)
		if errCam != nil || errX != nil || errY != nil || errC != nil {
			fmt.Println("Error: camera_id must be an integer and x/y/confidence must be numbers.")
			return
		}

		id := uuid.New()
		frame := vision.DetectionFrame{
			CameraID: &cam,
			Balls:    []vision.BallObservation{{X: x, Y: y, Confidence: conf}},
		}
		if err := world.Update(vision.WrapperPacket{Detection: &frame}); err != nil {
			logger.Error("ingest failed", "correlation_id", id, "cam", cam, "err", err)
			fmt.Printf("Error ingesting ball: %v\n", err)
			return
		}
		logger.Info("ingested ball", "correlation_id", id, "cam", cam, "x", x, "y", y, "confidence", conf)
	},
}

var ingestRobotCmd = &cobra.Command{
	Use:   "ingest-robot [camera_id] [blue|yellow] [robot_id] [x] [y] [theta_deg] [confidence]",
	Short: "Ingest a detection frame containing a single robot observation",
	Args:  cobra.ExactArgs(7),
	Run: func(cmd *cobra.Command, args []string) {
		cam, errCam := strconv.Atoi(args[0])
		color := strings.ToLower(args[1])
		robotID, errID := strconv.Atoi(args[2])
		x, errX := strconv.ParseFloat(args[3], 64)
		y, errY := strconv.ParseFloat(args[4], 64)
		thetaDeg, errT := strconv.ParseFloat(args[5], 64)
		conf, errC := strconv.ParseFloat(args[6], 64)
		if errCam != nil || errID != nil || errX != nil || errY != nil || errT != nil || errC != nil {
			fmt.Println("Error: numeric arguments must parse as such.")
			return
		}
		if color != "blue" && color != "yellow" {
			fmt.Println("Error: team color must be 'blue' or 'yellow'.")
			return
		}

		id := uuid.New()
		obs := vision.RobotObservation{
			RobotID:    &robotID,
			X:          x,
			Y:          y,
			Theta:      thetaDeg * math.Pi / 180,
			Confidence: conf,
		}
		frame := vision.DetectionFrame{CameraID: &cam}
		if color == "blue" {
			frame.RobotsBlue = []vision.RobotObservation{obs}
		} else {
			frame.RobotsYellow = []vision.RobotObservation{obs}
		}

		if err := world.Update(vision.WrapperPacket{Detection: &frame}); err != nil {
			logger.Error("ingest failed", "correlation_id", id, "cam", cam, "err", err)
			fmt.Printf("Error ingesting robot: %v\n", err)
			return
		}
		logger.Info("ingested robot", "correlation_id", id, "cam", cam, "color", color, "robot_id", robotID)
	},
}

var geometryCmd = &cobra.Command{
	Use:   "geometry [length] [width] [goal_width] [center_radius]",
	Short: "Ingest a geometry message",
	Args:  cobra.ExactArgs(4),
	Run: func(cmd *cobra.Command, args []string) {
		length, e1 := strconv.ParseFloat(args[0], 64)
		width, e2 := strconv.ParseFloat(args[1], 64)
		goalWidth, e3 := strconv.ParseFloat(args[2], 64)
		centerRadius, e4 := strconv.ParseFloat(args[3], 64)
		if e1 != nil || e2 != nil || e3 != nil || e4 != nil {
			fmt.Println("Error: all geometry arguments must be numbers.")
			return
		}

		geom := vision.Geometry{
			FieldLength: length,
			FieldWidth:  width,
			GoalWidth:   goalWidth,
			Arcs:        []vision.FieldArc{{Name: "CenterCircle", Radius: centerRadius}},
		}
		if err := world.Update(vision.WrapperPacket{Geometry: &geom}); err != nil {
			fmt.Printf("Error ingesting geometry: %v\n", err)
			return
		}
		logger.Info("ingested geometry", "length", length, "width", width)
	},
}

var cameraCmd = &cobra.Command{
	Use:   "camera [enable|disable] [camera_id]",
	Short: "Enable or disable ingest from a camera",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		action := strings.ToLower(args[0])
		cam, err := strconv.Atoi(args[1])
		if err != nil {
			fmt.Println("Error: camera_id must be an integer.")
			return
		}
		switch action {
		case "enable":
			world.EnableCamera(cam)
		case "disable":
			world.DisableCamera(cam)
		default:
			fmt.Println("Error: action must be 'enable' or 'disable'.")
			return
		}
		logger.Info("camera mask updated", "cam", cam, "action", action, "enabled", world.IsCameraEnabled(cam))
	},
}

var snapshotCmd = &cobra.Command{
	Use:   "snapshot",
	Short: "Print the current world snapshot",
	Run: func(cmd *cobra.Command, args []string) {
		snap := world.Value()
		fmt.Printf("ball: x=%.1f y=%.1f confidence=%.1f\n", snap.Ball.X, snap.Ball.Y, snap.Ball.Confidence)
		fmt.Printf("field: length=%.1f width=%.1f center_radius=%.1f\n", snap.Field.Length, snap.Field.Width, snap.Field.CenterRadius)
		printRobots("blue", snap.RobotsBlue)
		printRobots("yellow", snap.RobotsYellow)
	},
}

func printRobots(label string, robots model.RobotSnapshot) {
	fmt.Printf("%s robots (%d):\n", label, len(robots))
	ids := make([]int, 0, len(robots))
	for id := range robots {
		ids = append(ids, id)
	}
	sortInts(ids)
	for _, id := range ids {
		r := robots[id]
		fmt.Printf("  id=%d x=%.1f y=%.1f theta=%.3f confidence=%.1f\n", r.ID, r.X, r.Y, r.Theta, r.Confidence)
	}
}

func sortInts(ids []int) {
	for i := 1; i < len(ids); i++ {
		for j := i; j > 0 && ids[j-1] > ids[j]; j-- {
			ids[j-1], ids[j] = ids[j], ids[j-1]
		}
	}
}

func init() {
	rootCmd.AddCommand(ingestBallCmd)
	rootCmd.AddCommand(ingestRobotCmd)
	rootCmd.AddCommand(geometryCmd)
	rootCmd.AddCommand(cameraCmd)
	rootCmd.AddCommand(snapshotCmd)
}

func main() {
	world = updater.NewWorld()
	world.Ball().InstallFilter(observer.NewBall(0.2, 0.05))

	if len(os.Args) > 1 {
		if err := rootCmd.Execute(); err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
		return
	}

	reader := bufio.NewReader(os.Stdin)
	fmt.Println("Interactive worldcli. Type 'exit' to quit.")
	fmt.Println("Use 'help' to see available commands.")
	fmt.Println("---")

	for {
		fmt.Print("> ")

		input, err := reader.ReadString('\n')
		if err != nil {
			fmt.Println("Error reading input:", err)
			continue
		}

		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}
		if strings.ToLower(input) == "exit" {
			fmt.Println("Exiting interactive CLI. Goodbye!")
			return
		}

		args := strings.Split(input, " ")
		rootCmd.SetArgs(args)
		if err := rootCmd.Execute(); err != nil {
			fmt.Println(err)
		}
	}
}
