package cmd

import (
	"errors"
	"path/filepath"
	"strings"

	"github.com/achilleasa/prism/asset/scene/reader"
	"github.com/achilleasa/prism/asset/scene/writer"
	"github.com/urfave/cli"
)

// Compile scenes into zip archives that can be loaded without re-parsing.
func CompileScene(ctx *cli.Context) error {
	if err := setupLogging(ctx); err != nil {
		return err
	}

	if ctx.NArg() == 0 {
		return errors.New("missing scene file argument")
	}

	for idx := 0; idx < ctx.NArg(); idx++ {
		sceneFile := ctx.Args().Get(idx)
		if strings.HasSuffix(sceneFile, ".zip") {
			logger.Warningf("skipping already compiled scene %s", sceneFile)
			continue
		}

		logger.Noticef("parsing and compiling scene: %s", sceneFile)
		sc, err := reader.ReadScene(sceneFile)
		if err != nil {
			return err
		}

		logger.Noticef("scene information:\n%s", sc.Stats())

		err = writer.WriteScene(sc, compiledSceneFile(sceneFile))
		if err != nil {
			return err
		}
	}

	return nil
}

// Get the archive name for a scene file by replacing its extension with .zip.
func compiledSceneFile(sceneFile string) string {
	return strings.TrimSuffix(sceneFile, filepath.Ext(sceneFile)) + ".zip"
}
