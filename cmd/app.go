package cmd

import "github.com/urfave/cli"

// Create the prism command line application.
func NewApp() *cli.App {
	cli.VersionFlag = cli.BoolFlag{
		Name:  "version",
		Usage: "print only the version",
	}

	app := cli.NewApp()
	app.Name = "prism"
	app.Usage = "load OBJ/MTL scene descriptions for rendering"
	app.Version = "0.1.0"
	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "v",
			Usage: "enable verbose logging",
		},
		cli.BoolFlag{
			Name:  "vv",
			Usage: "enable even more verbose logging",
		},
		cli.StringFlag{
			Name:  "log-level",
			Usage: "set log level (debug, info, notice, warning, error)",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:      "info",
			Usage:     "print statistics for one or more scenes",
			ArgsUsage: "scene_file1.obj scene_file2.zip ...",
			Action:    ShowSceneInfo,
		},
		{
			Name:  "dump",
			Usage: "print the materials, objects and lights of a scene",
			Description: `
Load a scene and print a diagnostic description of every material, object and
light. With --yaml a structured summary is printed instead.`,
			ArgsUsage: "scene_file.obj",
			Flags: []cli.Flag{
				cli.BoolFlag{
					Name:  "yaml",
					Usage: "print a YAML summary",
				},
			},
			Action: DumpScene,
		},
		{
			Name:  "compile",
			Usage: "parse scenes and store them in a zip archive",
			Description: `
Parse a scene definition from a wavefront obj file and its material libraries
and store the resulting scene in a zip archive next to the source file.

The archive can be supplied to the info and dump commands in place of the
original scene file.`,
			ArgsUsage: "scene_file1.obj scene_file2.obj ...",
			Action:    CompileScene,
		},
	}
	return app
}
