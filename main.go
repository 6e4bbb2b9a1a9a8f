package main

import (
	"log"
	"time"

	"github.com/anoixa/photo-album/config"

	"github.com/anoixa/photo-album/cmd"
)

func init() {
	var cstZone = time.FixedZone("CST", 8*3600) // 东八
	time.Local = cstZone
}

func main() {
	log.Printf("photo album %s (%s)", config.Version, config.CommitHash)
	cmd.Execute()
}
