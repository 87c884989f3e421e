// Frame CLI - inspect, assemble, and store Frame ISA instruction streams
package main

import (
	"encoding/hex"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/tliron/commonlog"

	"github.com/chazu/frameisa/isa"
	"github.com/chazu/frameisa/manifest"
	"github.com/chazu/frameisa/store"
	"github.com/chazu/frameisa/wire"

	_ "github.com/tliron/commonlog/simple"
)

var log = commonlog.GetLogger("frame")

func main() {
	verbose := flag.Int("v", 0, "Log verbosity (0 = quiet)")
	dir := flag.String("C", ".", "Directory to search for frame.toml")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: frame [options] <command> [args...]\n\n")
		fmt.Fprintf(os.Stderr, "Commands:\n")
		fmt.Fprintf(os.Stderr, "  dis <hex|file>          Disassemble a packed instruction stream\n")
		fmt.Fprintf(os.Stderr, "  asm <opcode>...         Assemble opcode strings (AAAA:SSSS:MMMM) to hex\n")
		fmt.Fprintf(os.Stderr, "  decode <hex>            Decode a single extended instruction\n")
		fmt.Fprintf(os.Stderr, "  put <name> <opcode>...  Store a program in the program store\n")
		fmt.Fprintf(os.Stderr, "  get <name>              Disassemble a stored program\n")
		fmt.Fprintf(os.Stderr, "  list                    List stored programs\n")
		fmt.Fprintf(os.Stderr, "  rm <name>               Delete a stored program\n")
		fmt.Fprintf(os.Stderr, "\nOptions:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  frame dis 010000020450            # one GREET USER instruction\n")
		fmt.Fprintf(os.Stderr, "  frame asm 0100:0002:0450          # back to hex bytes\n")
		fmt.Fprintf(os.Stderr, "  frame put greeter 0100:0002:0450  # store it as \"greeter\"\n")
	}
	flag.Parse()

	commonlog.Configure(*verbose, nil)

	args := flag.Args()
	if len(args) == 0 {
		flag.Usage()
		os.Exit(1)
	}

	env, err := loadEnv(*dir)
	if err != nil {
		fatal(err)
	}

	cmd, rest := args[0], args[1:]
	switch cmd {
	case "dis":
		err = runDis(env, rest)
	case "asm":
		err = runAsm(rest)
	case "decode":
		err = runDecode(rest)
	case "put":
		err = runPut(env, rest)
	case "get":
		err = runGet(env, rest)
	case "list":
		err = runList(env)
	case "rm":
		err = runRm(env, rest)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", cmd)
		flag.Usage()
		os.Exit(1)
	}
	if err != nil {
		fatal(err)
	}
}

func fatal(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}

// env is the resolved deployment context: optional manifest, compiled
// catalog overlay, and store path.
type env struct {
	manifest *manifest.Manifest
	catalog  *manifest.Catalog
	storeDB  string
}

func loadEnv(dir string) (*env, error) {
	m, err := manifest.FindAndLoad(dir)
	if err != nil {
		return nil, err
	}
	e := &env{manifest: m, storeDB: "frame.db"}
	if m == nil {
		return e, nil
	}

	log.Infof("using manifest in %s", m.Dir)
	e.storeDB = m.StorePath()
	e.catalog, err = m.CompileCatalog()
	if err != nil {
		return nil, err
	}
	return e, nil
}

// namer returns the catalog overlay, which may be nil.
func (e *env) namer() isa.Namer {
	if e.catalog == nil {
		return nil
	}
	return e.catalog
}

func (e *env) openStore() (*store.Store, error) {
	log.Infof("opening program store %s", e.storeDB)
	return store.Open(e.storeDB)
}

// readStream interprets the argument as hex, or as a file path when it
// names an existing file.
func readStream(arg string) ([]byte, error) {
	if _, err := os.Stat(arg); err == nil {
		data, err := os.ReadFile(arg)
		if err != nil {
			return nil, err
		}
		return data, nil
	}
	cleaned := strings.Map(func(r rune) rune {
		if r == ' ' || r == '\n' || r == '\t' {
			return -1
		}
		return r
	}, arg)
	data, err := hex.DecodeString(cleaned)
	if err != nil {
		return nil, fmt.Errorf("argument %q is neither a file nor hex: %w", arg, err)
	}
	return data, nil
}

func parseProgram(opcodes []string) ([]isa.Instruction, error) {
	instrs := make([]isa.Instruction, 0, len(opcodes))
	for _, s := range opcodes {
		instr, err := isa.ParseOpcodeString(s)
		if err != nil {
			return nil, err
		}
		instrs = append(instrs, instr)
	}
	return instrs, nil
}

func runDis(e *env, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("dis takes exactly one argument")
	}
	code, err := readStream(args[0])
	if err != nil {
		return err
	}
	out, err := isa.DisassembleWith(code, e.namer())
	if err != nil {
		return err
	}
	fmt.Println(out)
	return nil
}

func runAsm(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("asm takes one or more opcode strings")
	}
	instrs, err := parseProgram(args)
	if err != nil {
		return err
	}
	fmt.Println(hex.EncodeToString(isa.EncodeAll(instrs)))
	return nil
}

func runDecode(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("decode takes exactly one argument")
	}
	code, err := readStream(args[0])
	if err != nil {
		return err
	}
	ext, err := isa.ParseExtended(code)
	if err != nil {
		return err
	}
	fmt.Println(ext)
	if calc, ok := ext.AsCalc(); ok {
		fmt.Printf("  calc: %s\n", calc)
	}
	if tp, ok := ext.AsTime(); ok {
		fmt.Printf("  time: ref=%d delta=%d %s tz=%+d -> target=%d\n",
			tp.Reference, tp.Delta, tp.Unit.Name(), tp.TZOffset, tp.TargetTimestamp())
	}
	return nil
}

func runPut(e *env, args []string) error {
	if len(args) < 2 {
		return fmt.Errorf("put takes a name and one or more opcode strings")
	}
	instrs, err := parseProgram(args[1:])
	if err != nil {
		return err
	}

	version := ""
	if e.manifest != nil {
		version = e.manifest.Project.Version
	}
	p := wire.NewProgram(args[0], version, instrs)

	s, err := e.openStore()
	if err != nil {
		return err
	}
	defer s.Close()

	if err := s.Put(p); err != nil {
		return err
	}
	fmt.Printf("stored %q (%d instructions, hash %x)\n", p.Name, len(instrs), p.Hash[:8])
	return nil
}

func runGet(e *env, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("get takes exactly one program name")
	}
	s, err := e.openStore()
	if err != nil {
		return err
	}
	defer s.Close()

	p, err := s.Get(args[0])
	if err != nil {
		return err
	}
	out, err := isa.DisassembleWith(p.Code, e.namer())
	if err != nil {
		return err
	}
	fmt.Printf("%s %s (hash %x)\n%s\n", p.Name, p.Version, p.Hash[:8], out)
	return nil
}

func runList(e *env) error {
	s, err := e.openStore()
	if err != nil {
		return err
	}
	defer s.Close()

	names, err := s.List()
	if err != nil {
		return err
	}
	for _, name := range names {
		fmt.Println(name)
	}
	return nil
}

func runRm(e *env, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("rm takes exactly one program name")
	}
	s, err := e.openStore()
	if err != nil {
		return err
	}
	defer s.Close()

	return s.Delete(args[0])
}
