// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/ezrec/volve/emulator"
	"github.com/ezrec/volve/monitor"
)

func main() {
	var compile string
	var image string
	var output string
	var limit int
	var verbose bool
	var fixJmp bool
	var dump bool
	var tcpAddr string
	var wsAddr string

	flag.StringVar(&compile, "c", "", ".s file to assemble and run")
	flag.StringVar(&image, "i", "", "ROM image to load at 0x8000")
	flag.StringVar(&output, "o", "", "Write the ROM image of the -c program, do not execute")
	flag.IntVar(&limit, "n", 0, "Instruction limit, 0 for no limit")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")
	flag.BoolVar(&fixJmp, "fix-jmp", false, "Carry JMP (abs) pointer into the next page")
	flag.BoolVar(&dump, "dump", false, "Dump registers on exit")
	flag.StringVar(&tcpAddr, "tcp", "", "Serve the monitor protocol on a TCP address")
	flag.StringVar(&wsAddr, "ws", "", "Serve the monitor protocol over WebSocket on an HTTP address")

	flag.Parse()

	if flag.NArg() != 0 {
		log.Fatalf("%v: Unknown arguments: %v", os.Args[0], flag.Args())
	}

	setup := func(emu *emulator.Emulator) (err error) {
		emu.Verbose = verbose
		emu.Cpu.FixIndirectJump = fixJmp

		if len(image) != 0 {
			err = emu.LoadFile(os.DirFS(filepath.Dir(image)), filepath.Base(image))
			if err != nil {
				return
			}
		}

		if len(compile) != 0 {
			var inf *os.File
			inf, err = os.Open(compile)
			if err != nil {
				return
			}
			defer inf.Close()

			err = emu.Assemble(inf)
			if err != nil {
				return
			}
		}

		emu.Reset()
		return
	}

	if len(output) != 0 {
		if len(compile) == 0 {
			log.Fatalf("%v: -o requires -c", os.Args[0])
		}

		emu := emulator.NewEmulator()
		err := setup(emu)
		if err != nil {
			log.Fatalf("%v: %v", compile, err)
		}

		rom, err := emu.Program.Rom()
		if err != nil {
			log.Fatalf("%v: %v", compile, err)
		}

		err = os.WriteFile(output, rom, 0o644)
		if err != nil {
			log.Fatalf("%v: %v", output, err)
		}
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if len(tcpAddr) != 0 || len(wsAddr) != 0 {
		srv := &monitor.Server{Verbose: verbose, Setup: setup}
		serve(ctx, srv, tcpAddr, wsAddr)
		return
	}

	emu := emulator.NewEmulator()
	err := setup(emu)
	if err != nil {
		log.Fatalf("%v", err)
	}

	err = emu.Run(ctx, limit)
	if dump {
		os.Stdout.WriteString(emu.Cpu.String())
	}
	if err != nil {
		log.Fatal(err)
	}
}

func serve(ctx context.Context, srv *monitor.Server, tcpAddr, wsAddr string) {
	errs := make(chan error, 2)

	if len(tcpAddr) != 0 {
		go func() {
			errs <- srv.ListenAndServeTCP(ctx, tcpAddr)
		}()
	}

	if len(wsAddr) != 0 {
		mux := http.NewServeMux()
		mux.Handle(monitor.WS_PATH, srv)
		hs := &http.Server{Addr: wsAddr, Handler: mux}
		context.AfterFunc(ctx, func() {
			hs.Close()
		})
		log.Printf("monitor: started HTTP(WebSocket) server at %v%v", wsAddr, monitor.WS_PATH)
		go func() {
			errs <- hs.ListenAndServe()
		}()
	}

	err := <-errs
	if err != nil && !errors.Is(err, context.Canceled) && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal(err)
	}
}
