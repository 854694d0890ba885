package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"image"
	"io"
	"net/http"
	_ "net/http/pprof"
	"os"
	"strings"
	"time"

	"github.com/asticode/go-astiav"
	"github.com/dustin/go-humanize"
	"github.com/facebookincubator/go-belt"
	"github.com/facebookincubator/go-belt/tool/logger"
	"github.com/facebookincubator/go-belt/tool/logger/implementation/logrus"
	"github.com/spf13/pflag"
	"github.com/xaionaro-go/avgrayscale"
	"github.com/xaionaro-go/avgrayscale/attributes"
	"github.com/xaionaro-go/avgrayscale/buffer"
	"github.com/xaionaro-go/avgrayscale/format"
	"github.com/xaionaro-go/avgrayscale/frame"
	"github.com/xaionaro-go/avgrayscale/frame/libav"
	avlogger "github.com/xaionaro-go/avgrayscale/logger"
	"github.com/xaionaro-go/avgrayscale/negotiator"
	"github.com/xaionaro-go/avgrayscale/types"
	"github.com/xaionaro-go/observability"
)

func main() {
	pflag.Usage = func() {
		fmt.Fprintf(os.Stderr, "syntax: %s [options] <raw-input-file|-> <raw-output-file|->\n", os.Args[0])
		pflag.PrintDefaults()
	}

	loggerLevel := logger.LevelWarning
	pflag.Var(&loggerLevel, "log-level", "Log level")
	netPprofAddr := pflag.String("net-pprof-listen-addr", "", "an address to listen for incoming net/pprof connections")
	pixelFormat := pflag.String("pixel-format", "NV12", "pixel format of the raw frames: NV12, YUY2 or UYVY")
	width := pflag.Uint32("width", 0, "frame width")
	height := pflag.Uint32("height", 0, "frame height")
	rectString := pflag.String("rect", "", "destination rectangle 'x0,y0,x1,y1' (the full frame by default)")
	fps := pflag.Float64("fps", 30, "frame rate used to timestamp the frames")
	useLibAV := pflag.Bool("libav", false, "carry the frames in libav frames instead of Go memory")
	pngPath := pflag.String("png", "", "save the luma plane of the last frame to this PNG file")
	pflag.Parse()
	if len(pflag.Args()) != 2 {
		pflag.Usage()
		os.Exit(1)
	}

	l := logrus.Default().WithLevel(loggerLevel)
	ctx := logger.CtxWithLogger(context.Background(), l)
	ctx, cancelFn := context.WithCancel(ctx)
	defer cancelFn()
	logger.Default = func() logger.Logger {
		return l
	}
	defer belt.Flush(ctx)

	if *netPprofAddr != "" {
		observability.Go(ctx, func(context.Context) { l.Error(http.ListenAndServe(*netPprofAddr, nil)) })
	}

	astiav.SetLogLevel(avlogger.LevelToAstiav(l.Level()))
	astiav.SetLogCallback(func(c astiav.Classer, level astiav.LogLevel, fmt, msg string) {
		var cs string
		if c != nil {
			if cl := c.Class(); cl != nil {
				cs = " - class: " + cl.String()
			}
		}
		l.Logf(
			avlogger.LevelFromAstiav(level),
			"%s%s",
			strings.TrimSpace(msg), cs,
		)
	})

	subtype, err := types.SubtypeFromString(*pixelFormat)
	if err != nil {
		l.Fatal(err)
	}

	store := attributes.New()
	if *rectString != "" {
		var rect image.Rectangle
		if _, err := fmt.Sscanf(*rectString, "%d,%d,%d,%d", &rect.Min.X, &rect.Min.Y, &rect.Max.X, &rect.Max.Y); err != nil {
			l.Fatalf("unable to parse the rectangle '%s': %v", *rectString, err)
		}
		store.Set(ctx, attributes.KeyDestinationRectangle, rect.Canon())
	}

	input, err := openInput(pflag.Arg(0))
	if err != nil {
		l.Fatal(err)
	}
	defer input.Close()
	output, err := openOutput(pflag.Arg(1))
	if err != nil {
		l.Fatal(err)
	}
	defer output.Close()

	g := avgrayscale.New(ctx, avgrayscale.OptionAttributes{Store: store})
	desc := format.NewVideo(subtype, *width, *height)
	if err := g.SetInputType(ctx, 0, desc, 0); err != nil {
		l.Fatalf("unable to set the input type %s: %v", desc, err)
	}
	if err := g.SetOutputType(ctx, 0, desc, 0); err != nil {
		l.Fatalf("unable to set the output type %s: %v", desc, err)
	}
	if err := g.ProcessMessage(ctx, types.MessageNotifyBeginStreaming, 0); err != nil {
		l.Fatal(err)
	}

	imageSize, err := negotiator.ImageSize(subtype, *width, *height)
	if err != nil {
		l.Fatal(err)
	}
	l.Debugf("frame size: %s", humanize.IBytes(uint64(imageSize)))

	p := &pump{
		Grayscale:     g,
		Subtype:       subtype,
		Width:         *width,
		Height:        *height,
		ImageSize:     imageSize,
		FrameDuration: time.Duration(float64(time.Second) / *fps),
		UseLibAV:      *useLibAV,
	}

	var lastFrame []byte
	for frameIdx := 0; ; frameIdx++ {
		raw := make([]byte, imageSize)
		_, err := io.ReadFull(input, raw)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			l.Fatalf("unable to read frame #%d: %v", frameIdx, err)
		}

		result, err := p.Process(ctx, frameIdx, raw)
		if err != nil {
			l.Fatalf("unable to process frame #%d: %v", frameIdx, err)
		}
		if _, err := output.Write(result); err != nil {
			l.Fatalf("unable to write frame #%d: %v", frameIdx, err)
		}
		lastFrame = result
	}

	if err := g.ProcessMessage(ctx, types.MessageNotifyEndOfStream, 0); err != nil {
		l.Fatal(err)
	}
	if err := g.ProcessMessage(ctx, types.MessageNotifyEndStreaming, 0); err != nil {
		l.Fatal(err)
	}

	if *pngPath != "" && lastFrame != nil {
		if err := saveLuma(*pngPath, subtype, int(*width), int(*height), lastFrame); err != nil {
			l.Fatal(err)
		}
	}

	stats := g.GetStats()
	statsJSON, err := json.Marshal(stats)
	if err != nil {
		l.Fatal(err)
	}
	fmt.Fprintf(os.Stderr, "%s (%s produced)\n", statsJSON, humanize.IBytes(stats.Produced.Bytes))
}

func openInput(path string) (io.ReadCloser, error) {
	if path == "-" {
		return io.NopCloser(os.Stdin), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("unable to open '%s': %w", path, err)
	}
	return f, nil
}

type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error { return nil }

func openOutput(path string) (io.WriteCloser, error) {
	if path == "-" {
		return nopWriteCloser{Writer: os.Stdout}, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("unable to create '%s': %w", path, err)
	}
	return f, nil
}

type pump struct {
	*avgrayscale.Grayscale
	Subtype       types.Subtype
	Width         uint32
	Height        uint32
	ImageSize     uint32
	FrameDuration time.Duration
	UseLibAV      bool
}

// Process pushes one raw frame through the transform and returns the converted frame.
func (p *pump) Process(
	ctx context.Context,
	frameIdx int,
	raw []byte,
) ([]byte, error) {
	in, err := p.newSample(raw)
	if err != nil {
		return nil, fmt.Errorf("unable to create the input frame: %w", err)
	}
	if err := in.SetTimestamp(time.Duration(frameIdx) * p.FrameDuration); err != nil {
		return nil, err
	}
	if err := in.SetDuration(p.FrameDuration); err != nil {
		return nil, err
	}

	out, err := p.newSample(nil)
	if err != nil {
		return nil, fmt.Errorf("unable to create the output frame: %w", err)
	}
	defer frame.Release(out)

	if err := p.ProcessInput(ctx, 0, in, 0); err != nil {
		frame.Release(in)
		return nil, fmt.Errorf("unable to push the input frame: %w", err)
	}
	if _, err := p.ProcessOutput(ctx, 0, []avgrayscale.OutputDataBuffer{{Sample: out}}); err != nil {
		return nil, fmt.Errorf("unable to get the output frame: %w", err)
	}

	outBuf, err := out.ContiguousBuffer()
	if err != nil {
		return nil, err
	}
	data, err := outBuf.Lock(buffer.LockFlagsRead)
	if err != nil {
		return nil, err
	}
	result := make([]byte, outBuf.CurrentLength())
	copy(result, data)
	return result, outBuf.Unlock()
}

func (p *pump) newSample(raw []byte) (frame.Sample, error) {
	if !p.UseLibAV {
		if raw == nil {
			return frame.NewMemory(buffer.NewMemory(p.ImageSize)), nil
		}
		return frame.NewMemoryFromBytes(raw), nil
	}

	f, err := libav.NewPooledFrame(p.Subtype, p.Width, p.Height)
	if err != nil {
		return nil, err
	}
	if raw != nil {
		if err := f.MakeWritable(); err != nil {
			return nil, err
		}
		if err := f.Data().SetBytes(raw, 1); err != nil {
			return nil, err
		}
	}
	return f, nil
}
