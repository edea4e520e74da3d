// command gnssdriverd runs the GNSS receiver driver against a serial
// device, printing status lines and recognizing a single operator
// command on stdin.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"gnssdrv.dev/gnss"
	"gnssdrv.dev/hwreset"
	"gnssdrv.dev/link"
	"gnssdrv.dev/ring"
)

const (
	ringCapacity = 4096
	tickPeriod   = 25 * time.Millisecond
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "gnssdriverd: %v\n", err)
		os.Exit(2)
	}
}

func run() error {
	device := flag.String("device", "/dev/ttyUSB0", "serial device path")
	baud := flag.Int("baud", 38400, "serial baud rate")
	resetPin := flag.String("reset-pin", "", "GPIO pin name driving the receiver's RESET_N line (empty disables hardware reset)")
	flag.Parse()

	log.SetFlags(log.Flags() &^ (log.Ldate | log.Ltime))
	log.Printf("gnssdriverd: opening %s at %d baud", *device, *baud)

	r := ring.New(ringCapacity)
	l, err := link.Open(*device, *baud, r)
	if err != nil {
		return fmt.Errorf("opening serial link: %w", err)
	}
	defer l.Close()

	resetLine, err := hwreset.Open(*resetPin)
	if err != nil {
		return fmt.Errorf("opening reset line: %w", err)
	}

	d := gnss.New(l, r, resetLine)

	ibitRequests := make(chan struct{})
	go listenForCommands(os.Stdin, ibitRequests)

	ticker := time.NewTicker(tickPeriod)
	defer ticker.Stop()

	lastMode := gnss.Mode(-1)
	for {
		select {
		case <-ibitRequests:
			d.RequestIBIT()
		case now := <-ticker.C:
			for _, frame := range d.Tick(now) {
				if err := l.Write(frame); err != nil {
					log.Printf("gnssdriverd: write: %v", err)
				}
			}
			if d.Mode != lastMode {
				log.Printf("gnssdriverd: mode -> %s", d.Mode)
				lastMode = d.Mode
			}
		}
	}
}

// listenForCommands recognizes the single case-insensitive "ibit"
// command on r, sending to requests whenever it appears on its own
// line.
func listenForCommands(r *os.File, requests chan<- struct{}) {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		if strings.EqualFold(strings.TrimSpace(scanner.Text()), "ibit") {
			requests <- struct{}{}
		}
	}
}
