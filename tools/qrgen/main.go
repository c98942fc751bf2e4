package main

import (
	"flag"
	"fmt"
	"os"

	qrcode "github.com/skip2/go-qrcode"
)

// qrgen генерирует PNG с QR-кодом для бумажных приглашений на сайт.
// Никак не связан с игровым ядром.
func main() {
	var out string
	var size int
	flag.StringVar(&out, "out", "qr.png", "Output PNG filename")
	flag.IntVar(&size, "size", 512, "Image size in pixels")
	flag.Parse()

	if flag.NArg() < 1 {
		printHelp()
		os.Exit(1)
	}
	url := flag.Arg(0)

	if err := qrcode.WriteFile(url, qrcode.Medium, size, out); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to write QR code: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("QR code for %s written to %s (%dx%d)\n", url, out, size, size)
}

func printHelp() {
	fmt.Println(`qrgen - генерация QR-кода для ссылки
Usage:
  qrgen [-out file.png] [-size 512] <url>`)
}
