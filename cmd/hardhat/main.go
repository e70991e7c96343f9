// Command hardhat resolves a frame of detector predictions into workers and
// their hard hat status, optionally rendering the result onto the frame image.
package main

import (
	"flag"
	"github.com/swdee/go-hardhat"
	"github.com/swdee/go-hardhat/config"
	"github.com/swdee/go-hardhat/frame"
	"github.com/swdee/go-hardhat/logger"
	"github.com/swdee/go-hardhat/postprocess"
	"github.com/swdee/go-hardhat/render"
	"go.uber.org/zap"
	"gocv.io/x/gocv"
	"io"
	"log"
	"os"
)

func main() {
	// disable logging timestamps
	log.SetFlags(0)

	// read in cli flags
	cfgFile := flag.String("c", "", "Config file, defaults and HARDHAT_ environment variables are used when not set")
	frameFile := flag.String("f", "-", "Frame JSON file of predictions, or - for stdin")
	labelFile := flag.String("l", "", "Labels file of the Model, when set the frame file holds raw detector results with class indexes")
	imgFile := flag.String("i", "", "Optional image of the frame to render workers on")
	saveFile := flag.String("o", "hardhat-out.jpg", "The output JPG file with rendered workers")

	flag.Parse()

	cfg, err := config.Load(*cfgFile)

	if err != nil {
		log.Fatal("Error loading config: ", err)
	}

	zlog, err := logger.New(cfg.Log)

	if err != nil {
		log.Fatal("Error creating logger: ", err)
	}

	defer zlog.Sync()

	var in io.Reader = os.Stdin

	if *frameFile != "-" {
		fh, err := os.Open(*frameFile)

		if err != nil {
			zlog.Fatal("error opening frame file", zap.String("file", *frameFile), zap.Error(err))
		}

		defer fh.Close()
		in = fh
	}

	var frameID string
	var preds []hardhat.Prediction

	if *labelFile != "" {
		labels, err := hardhat.LoadLabels(*labelFile)

		if err != nil {
			zlog.Fatal("error loading labels", zap.String("file", *labelFile), zap.Error(err))
		}

		dets, err := frame.DecodeDetections(in)

		if err != nil {
			zlog.Fatal("error decoding detections", zap.Error(err))
		}

		frameID = dets.ID
		preds = dets.ToPredictions(labels)

	} else {
		f, err := frame.Decode(in)

		if err != nil {
			zlog.Fatal("error decoding frame", zap.Error(err))
		}

		frameID = f.ID
		preds = f.ToPredictions()
	}

	factory := postprocess.NewWorkerFactory(cfg.Params, postprocess.WithLogger(zlog))
	workers := factory.Workers(preds)

	zlog.Info("frame resolved",
		zap.String("frame_id", frameID),
		zap.Int("predictions", len(preds)),
		zap.Int("workers", len(workers)),
	)

	if err := frame.Encode(os.Stdout, frame.NewResult(frameID, workers)); err != nil {
		zlog.Fatal("error writing result", zap.Error(err))
	}

	if *imgFile == "" {
		return
	}

	img := gocv.IMRead(*imgFile, gocv.IMReadColor)

	if img.Empty() {
		zlog.Fatal("error reading image", zap.String("file", *imgFile))
	}

	defer img.Close()

	render.WorkerBoxes(&img, workers, render.DefaultFont(), 2)

	if ok := gocv.IMWrite(*saveFile, img); !ok {
		zlog.Fatal("failed to save the image", zap.String("file", *saveFile))
	}

	zlog.Info("saved rendered image", zap.String("file", *saveFile))
}
