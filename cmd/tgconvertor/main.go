// tgconvertor converts Telegram session credentials between the Pyrogram
// string/file, Telethon string/file and Telegram Desktop tdata formats.
//
// Usage:
//
//	tgconvertor <input-type> <input> <output-type> [output]
//
// Types: pyro-str, pyro-file, tele-str, tele-file, tdata. String outputs
// print to stdout unless an output path is given.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/nazar220160/TGConvertor/internal/buildinfo"
	"github.com/nazar220160/TGConvertor/internal/config"
	"github.com/nazar220160/TGConvertor/internal/converter"
)

func usage() {
	fmt.Fprintf(flag.CommandLine.Output(),
		"Usage: %s <input-type> <input> <output-type> [output]\n\n"+
			"Session types:\n"+
			"  pyro-str   Pyrogram session string\n"+
			"  pyro-file  Pyrogram .session SQLite file\n"+
			"  tele-str   Telethon session string\n"+
			"  tele-file  Telethon .session SQLite file\n"+
			"  tdata      Telegram Desktop tdata folder\n\n"+
			"A custom API identity comes from TG_API_ID / TG_API_HASH (or .env).\n",
		os.Args[0])
}

func main() {
	flag.Usage = usage
	version := flag.Bool("version", false, "print version and exit")
	flag.Parse()
	if *version {
		fmt.Println(buildinfo.String())
		return
	}
	args := flag.Args()
	if len(args) < 3 || len(args) > 4 {
		usage()
		os.Exit(2)
	}
	inType, input, outType := args[0], args[1], args[2]
	output := ""
	if len(args) == 4 {
		output = args[3]
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	sm, err := load(inType, input, cfg)
	if err != nil {
		log.Fatalf("Failed to load %s session: %v", inType, err)
	}

	if err := export(sm, outType, output); err != nil {
		log.Fatalf("Failed to export %s session: %v", outType, err)
	}
}

func load(inType, input string, cfg *config.Config) (*converter.SessionManager, error) {
	api := converter.WithAPI(cfg.API)
	switch inType {
	case "pyro-str":
		return converter.FromPyrogramString(input, api)
	case "pyro-file":
		return converter.FromPyrogramFile(input, api)
	case "tele-str":
		return converter.FromTelethonString(input, api)
	case "tele-file":
		return converter.FromTelethonFile(input, api)
	case "tdata":
		return converter.FromTDataFolder(input, api)
	default:
		return nil, fmt.Errorf("unknown session type %q", inType)
	}
}

func export(sm *converter.SessionManager, outType, output string) error {
	switch outType {
	case "pyro-str":
		s, err := sm.ToPyrogramString()
		if err != nil {
			return err
		}
		return emit(s, output)
	case "tele-str":
		s, err := sm.ToTelethonString()
		if err != nil {
			return err
		}
		return emit(s, output)
	case "pyro-file":
		if output == "" {
			return fmt.Errorf("output path is required for pyro-file")
		}
		if err := sm.ToPyrogramFile(output); err != nil {
			return err
		}
		log.Printf("✅ Pyrogram session file saved to %s", output)
		return nil
	case "tele-file":
		if output == "" {
			return fmt.Errorf("output path is required for tele-file")
		}
		if err := sm.ToTelethonFile(output); err != nil {
			return err
		}
		log.Printf("✅ Telethon session file saved to %s", output)
		return nil
	case "tdata":
		if output == "" {
			return fmt.Errorf("output path is required for tdata")
		}
		if err := sm.ToTDataFolder(context.Background(), output); err != nil {
			return err
		}
		log.Printf("✅ tdata folder saved to %s", output)
		return nil
	default:
		return fmt.Errorf("unknown session type %q", outType)
	}
}

func emit(s, output string) error {
	if output == "" {
		fmt.Println(s)
		return nil
	}
	if err := os.WriteFile(output, []byte(s+"\n"), 0o600); err != nil {
		return err
	}
	log.Printf("✅ Session string saved to %s", output)
	return nil
}
