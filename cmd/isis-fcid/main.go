package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/miku/isiskit/convert"
)

// isis-fcid converts fatcat idents of exported releases to UUIDs and back.

var (
	fromFatcat = flag.String("f", "", "from fatcat id, e.g. release_2ujzwjsay5aohfmwlpyiyhmb7a")
	fromUUID   = flag.String("u", "", "from uuid, e.g. d5139b26-40c7-40e3-9596-5bf08c1d81f8")
)

func main() {
	flag.Parse()
	switch {
	case *fromFatcat != "":
		u, err := convert.ParseFatcatIdent(*fromFatcat)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		fmt.Println(u.String())
	case *fromUUID != "":
		u, err := uuid.Parse(*fromUUID)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		fmt.Println(convert.FatcatIdent(u))
	default:
		flag.Usage()
	}
}
