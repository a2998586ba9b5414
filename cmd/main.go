// 指示: miu200521358
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/miu200521358/mu_hoyo2vrc/pkg/adapter/io_model/glb"
	"github.com/miu200521358/mu_hoyo2vrc/pkg/adapter/mpresenter/messages"
	"github.com/miu200521358/mu_hoyo2vrc/pkg/infra/config"
	"github.com/miu200521358/mu_hoyo2vrc/pkg/usecase/minteractor"
	"github.com/miu200521358/mu_hoyo2vrc/pkg/usecase/port/moutput"
)

// options はCLI引数を保持する。
type options struct {
	inputPath  string
	outputPath string
	configPath string
	noWarnings bool
}

// main はゲームモデルからVRChat向けGLBへの変換を実行する。
func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run はCLI処理全体を実行する。
func run(args []string, out io.Writer, errOut io.Writer) error {
	opts, err := parseOptions(args, errOut)
	if err != nil {
		return err
	}

	settings, err := resolveSettings(opts.configPath)
	if err != nil {
		return err
	}
	conversionSettings := toConversionSettings(settings)

	repository := glb.NewGlbRepository()
	usecase := minteractor.NewHoyo2VrcUsecase(minteractor.Hoyo2VrcUsecaseDeps{
		ModelReader: repository,
		ModelWriter: repository,
	})

	fmt.Fprintf(out, messages.LogLoadStarted, opts.inputPath)
	result, err := usecase.Convert(minteractor.ConvertRequest{
		InputPath:        opts.inputPath,
		OutputPath:       opts.outputPath,
		SaveOptions:      moutput.SaveOptions{IncludeWarnings: !opts.noWarnings},
		Settings:         &conversionSettings,
		ProgressReporter: &cliProgressReporter{out: out},
	})
	if err != nil {
		return fmt.Errorf(messages.MessageConvertFailed, err)
	}

	for _, warning := range result.Model.Warnings {
		fmt.Fprintf(out, messages.LogWarning, warning)
	}
	fmt.Fprintf(out, messages.LogConvertSucceeded, result.OutputPath)
	return nil
}

// cliProgressReporter は変換進捗を標準出力へ流す。
type cliProgressReporter struct {
	out io.Writer
}

// ReportConvertProgress は変換進捗イベントを出力する。
func (r *cliProgressReporter) ReportConvertProgress(event minteractor.ConvertProgressEvent) {
	switch event.Type {
	case minteractor.ConvertProgressEventTypeModelLoaded:
		fmt.Fprintf(r.out, messages.LogLoadCompleted, event.JointCount, event.MeshCount)
	case minteractor.ConvertProgressEventTypeGameIdentified:
		fmt.Fprintf(r.out, messages.LogGameIdentified, event.Game)
	case minteractor.ConvertProgressEventTypePipelineCompleted:
		fmt.Fprintf(r.out, messages.LogPipelineCompleted, event.JointCount, event.MeshCount)
	}
}

// parseOptions はCLI引数を解析する。
func parseOptions(args []string, errOut io.Writer) (options, error) {
	fs := flag.NewFlagSet("mu_hoyo2vrc", flag.ContinueOnError)
	fs.SetOutput(errOut)

	in := fs.String("in", "", messages.LabelInputPath)
	out := fs.String("out", "", messages.LabelOutputPath)
	configPath := fs.String("config", "", messages.LabelConfigPath)
	noWarnings := fs.Bool("no-warnings", false, messages.LabelNoWarnings)
	if err := fs.Parse(args); err != nil {
		return options{}, err
	}

	if *in == "" && fs.NArg() > 0 {
		*in = fs.Arg(0)
	}
	if *out == "" && fs.NArg() > 1 {
		*out = fs.Arg(1)
	}
	if *in == "" {
		return options{}, errors.New(messages.MessageInputRequired)
	}

	ext := filepath.Ext(*in)
	if !strings.EqualFold(ext, ".glb") && !strings.EqualFold(ext, ".gltf") {
		return options{}, fmt.Errorf(messages.MessageInputExtRange, *in)
	}

	return options{
		inputPath:  *in,
		outputPath: *out,
		configPath: *configPath,
		noWarnings: *noWarnings,
	}, nil
}

// resolveSettings は設定ファイルの有無に応じて変換設定を解決する。
func resolveSettings(configPath string) (config.Settings, error) {
	if strings.TrimSpace(configPath) == "" {
		return config.DefaultSettings(), nil
	}
	return config.LoadSettings(configPath)
}

// toConversionSettings はTOML設定を変換設定へ写し替える。
func toConversionSettings(settings config.Settings) minteractor.ConversionSettings {
	return minteractor.ConversionSettings{
		MergeAllMeshes:       settings.MergeAllMeshes,
		ConnectChestToNeck:   settings.ConnectChestToNeck,
		ConnectTwistToLimbs:  settings.ConnectTwistToLimbs,
		ReconnectArmature:    settings.ReconnectArmature,
		HumanoidArmatureFix:  settings.HumanoidArmatureFix,
		GenerateShapeKeys:    settings.GenerateShapeKeys,
		GenerateShapeKeysMmd: settings.GenerateShapeKeysMmd,
		KeepStarEyeMesh:      settings.KeepStarEyeMesh,
	}
}
