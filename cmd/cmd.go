package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"math/rand"
	"os"
	"strconv"
	"time"

	"github.com/akamensky/argparse"

	"github.com/O33ero/qfactor/config"
	"github.com/O33ero/qfactor/factor"
	"github.com/O33ero/qfactor/printer"
	"github.com/O33ero/qfactor/quantum"
	"github.com/O33ero/qfactor/reporter"
	"github.com/O33ero/qfactor/runlog"
	"github.com/O33ero/qfactor/server"
	"github.com/O33ero/qfactor/util"
)

func Execute() {
	parser := argparse.NewParser("qfactor", "Integer factorization with Shor's algorithm on a simulated quantum backend")
	method := parser.Selector("m", "method", []string{"quantum", "classical"}, &argparse.Options{
		Help: "Order finding method [quantum, classical]"})
	attempts := parser.Int("q", "attempts", &argparse.Options{
		Help: "Number of order finding attempts before giving up"})
	workers := parser.Int("w", "workers", &argparse.Options{
		Help: "Run attempts concurrently with this many workers"})
	seed := parser.Int("s", "seed", &argparse.Options{
		Help: "Seed for base selection and the simulated backend (0 picks a time based one)"})
	timeout := parser.Int("", "timeout", &argparse.Options{
		Help: "Overall deadline in milliseconds, checked between attempts (0 means none)"})
	tablePrint := parser.Flag("t", "table", &argparse.Options{
		Help: "Output the attempt log as a table"})
	jsonPrint := parser.Flag("j", "json", &argparse.Options{
		Help: "Output the result as JSON"})
	rawPrint := parser.Flag("", "raw", &argparse.Options{
		Help: "An output easy to parse"})
	output := parser.String("o", "output", &argparse.Options{
		Help: "Append the attempt log and result to this file"})
	report := parser.Flag("r", "report", &argparse.Options{
		Help: "Print the complete prime factorization instead of a single split"})
	showCircuit := parser.Flag("C", "circuit", &argparse.Options{
		Help: "Print the order finding circuit for the first attempt base and exit"})
	listen := parser.String("L", "listen", &argparse.Options{
		Help: "Run the HTTP API server on this address instead of a one-shot run"})
	ver := parser.Flag("v", "version", &argparse.Options{
		Help: "Print version info and exit"})
	str := parser.StringPositional(&argparse.Options{Help: "Number to factor"})

	err := parser.Parse(os.Args)
	if err != nil {
		fmt.Print(parser.Usage(err))
		return
	}
	if !*jsonPrint && !*rawPrint {
		printer.Version()
	}
	if *ver {
		os.Exit(0)
	}

	config.InitConfig()

	listenAddr := *listen
	if listenAddr == "" {
		listenAddr = util.EnvListenAddr
	}
	if listenAddr != "" {
		if err := server.Run(listenAddr); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		return
	}

	if *str == "" {
		fmt.Print(parser.Usage(nil))
		os.Exit(2)
	}
	n, err := strconv.ParseInt(*str, 10, 64)
	if err != nil || n < 2 {
		fmt.Fprintf(os.Stderr, "qfactor: %q is not an integer greater than 1\n", *str)
		os.Exit(2)
	}

	cfg := buildConfig(*method, *attempts, *workers, int64(*seed))
	switch {
	case *output != "":
		cfg.OnAttempt = runlog.AttemptLogger(*output)
	case !*jsonPrint && !*rawPrint:
		cfg.OnAttempt = printer.RealtimeAttemptPrinter
	}

	if *showCircuit {
		printCircuit(n, cfg)
		return
	}

	ctx := context.Background()
	if *timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, time.Duration(*timeout)*time.Millisecond)
		defer cancel()
	}

	if *report {
		reporter.New(n, cfg).Print()
		return
	}

	res, err := factor.FindFactor(ctx, n, cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, "qfactor:", err)
		os.Exit(1)
	}
	if *output != "" {
		runlog.ResultLogger(*output, res)
	}

	switch {
	case *jsonPrint:
		out, _ := json.MarshalIndent(res, "", "  ")
		fmt.Println(string(out))
	case *rawPrint:
		printer.EasyPrinter(res)
	default:
		if *tablePrint || config.TablePrintDefault() {
			printer.AttemptTablePrinter(res)
		}
		printer.ResultPrinter(res)
	}
}

// buildConfig resolves settings by precedence: flag, QFACTOR_* env,
// config file.
func buildConfig(method string, attempts, workers int, seed int64) factor.Config {
	if method == "" {
		method = util.EnvMethod
	}
	if method == "" {
		method = config.Method()
	}
	if attempts == 0 {
		attempts = util.EnvMaxAttempts
	}
	if attempts == 0 {
		attempts = config.MaxAttempts()
	}
	if workers == 0 {
		workers = util.EnvWorkers
	}
	if workers == 0 {
		workers = config.Workers()
	}
	if seed == 0 {
		seed = util.EnvSeed
	}

	sim := quantum.NewSimulator(seed)
	if q := config.SimulatorQubits(); q > 0 {
		sim.MaxQubits = q
	}

	rngSeed := seed
	if rngSeed == 0 {
		rngSeed = time.Now().UnixNano()
	}
	return factor.Config{
		Method:      factor.Method(method),
		MaxAttempts: attempts,
		Workers:     workers,
		Rand:        rand.New(rand.NewSource(rngSeed)),
		Sampler:     sim,
	}
}

func printCircuit(n int64, cfg factor.Config) {
	x := int64(2)
	for x < n && factor.GCD(x, n) > 1 {
		x++
	}
	circuit, err := quantum.NewOrderFindingCircuit(x, n)
	if err != nil {
		fmt.Fprintln(os.Stderr, "qfactor:", err)
		os.Exit(1)
	}
	fmt.Printf("order finding circuit for x=%d mod n=%d:\n%s", x, n, circuit)
}
