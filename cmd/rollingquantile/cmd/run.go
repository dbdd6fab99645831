package cmd

import (
	"bufio"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	rollingquantile "github.com/xuestrange/rollingquantile"
)

var (
	inputFile    string
	outputFile   string
	windowFlag   int
	quantileFlag float64
	medianFlag   bool
	nanFlag      string
	formatFlag   string
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Compute a rolling quantile over a column of numbers",
	Long: `run reads a single column of numbers from --input (or stdin), computes the sliding-window
quantile over it, and writes one result per input element to --output (or stdout).

--format selects how --input is parsed and --output is written: "lines" (the default, one bare
number per line), "csv" (first field of each row; a non-numeric first row is treated as a header
and skipped), or "json" (a JSON array of numbers).

Flags take precedence over the config file; the config file takes precedence over defaults.`,
	Example: `  rollingquantile run --input latencies.txt --window 100 --quantile 0.99
  rollingquantile run --input latencies.csv --format csv --median
  cat latencies.txt | rollingquantile run --window 50 > p50.txt`,
	RunE: runRun,
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().StringVarP(&inputFile, "input", "i", "", "input file (default: stdin)")
	runCmd.Flags().StringVarP(&outputFile, "output", "o", "", "output file (default: stdout)")
	runCmd.Flags().IntVarP(&windowFlag, "window", "w", 0, "sliding window width (default: from config, "+
		"fallback 5)")
	runCmd.Flags().Float64VarP(&quantileFlag, "quantile", "q", -1, "quantile in [0, 1]; 0.5 is the "+
		"median (default: from config, fallback 0.5)")
	runCmd.Flags().BoolVar(&medianFlag, "median", false, "shorthand for --quantile 0.5; overrides --quantile")
	runCmd.Flags().StringVar(&nanFlag, "nan", "", "NaN handling: \"error\" or \"high\" "+
		"(default: from config, fallback \"error\")")
	runCmd.Flags().StringVar(&formatFlag, "format", "lines", "input/output format: \"lines\", \"csv\", or \"json\"")
}

func runRun(cmd *cobra.Command, args []string) error {
	window := cfg.Filter.Width
	if windowFlag > 0 {
		window = windowFlag
	}
	quantile := cfg.Filter.Quantile
	if quantileFlag >= 0 {
		quantile = quantileFlag
	}
	if medianFlag {
		quantile = 0.5
	}
	policy := cfg.Filter.NaNPolicy
	if nanFlag != "" {
		policy = nanFlag
	}

	var ord rollingquantile.Ordering[float64]
	switch policy {
	case "error", "":
		ord = rollingquantile.NaNError[float64]()
	case "high":
		ord = rollingquantile.NaNHigh[float64]()
	default:
		return fmt.Errorf("unknown --nan %q (want \"error\" or \"high\")", policy)
	}

	format := formatFlag
	if format == "" {
		format = "lines"
	}
	if format != "lines" && format != "csv" && format != "json" {
		return fmt.Errorf("unknown --format %q (want \"lines\", \"csv\", or \"json\")", format)
	}

	in, err := openInput(inputFile)
	if err != nil {
		return err
	}
	defer in.Close()

	x, err := readNumbers(in, format)
	if err != nil {
		return err
	}
	logger.Debug("read %d values, window=%d quantile=%v nan=%s format=%s", len(x), window, quantile, policy, format)

	filter := rollingquantile.NewBuilder[float64]().WithOrdering(ord).Build()
	y, err := filter.Quantile(window, x, quantile)
	if err != nil {
		return fmt.Errorf("compute rolling quantile: %w", err)
	}

	out, closeOut, err := openOutput(outputFile)
	if err != nil {
		return err
	}
	defer closeOut()

	return writeNumbers(out, y, format)
}

func openInput(path string) (io.ReadCloser, error) {
	if path == "" {
		return io.NopCloser(os.Stdin), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open input: %w", err)
	}
	return f, nil
}

func openOutput(path string) (io.Writer, func(), error) {
	if path == "" {
		return os.Stdout, func() {}, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, fmt.Errorf("create output: %w", err)
	}
	return f, func() { _ = f.Close() }, nil
}

func readNumbers(r io.Reader, format string) ([]float64, error) {
	switch format {
	case "csv":
		return readNumbersCSV(r)
	case "json":
		return readNumbersJSON(r)
	default:
		return readNumbersLines(r)
	}
}

func readNumbersLines(r io.Reader) ([]float64, error) {
	var x []float64
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}
		v, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		x = append(x, v)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}
	return x, nil
}

// readNumbersCSV reads the first field of each row as a value. A first row whose first field
// doesn't parse as a number is treated as a header and skipped; any later row that fails to parse
// is a hard error.
func readNumbersCSV(r io.Reader) ([]float64, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	var x []float64
	row := 0
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read csv: %w", err)
		}
		row++
		if len(record) == 0 {
			continue
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(record[0]), 64)
		if err != nil {
			if row == 1 {
				logger.Debug("csv row 1 is not numeric, treating it as a header: %v", err)
				continue
			}
			return nil, fmt.Errorf("csv row %d: %w", row, err)
		}
		x = append(x, v)
	}
	return x, nil
}

func readNumbersJSON(r io.Reader) ([]float64, error) {
	var x []float64
	if err := json.NewDecoder(r).Decode(&x); err != nil {
		return nil, fmt.Errorf("read json: %w", err)
	}
	return x, nil
}

func writeNumbers(w io.Writer, y []float64, format string) error {
	switch format {
	case "csv":
		return writeNumbersCSV(w, y)
	case "json":
		return writeNumbersJSON(w, y)
	default:
		return writeNumbersLines(w, y)
	}
}

func writeNumbersLines(w io.Writer, y []float64) error {
	bw := bufio.NewWriter(w)
	for _, v := range y {
		if _, err := fmt.Fprintf(bw, "%g\n", v); err != nil {
			return fmt.Errorf("write output: %w", err)
		}
	}
	return bw.Flush()
}

func writeNumbersCSV(w io.Writer, y []float64) error {
	writer := csv.NewWriter(w)
	for _, v := range y {
		if err := writer.Write([]string{strconv.FormatFloat(v, 'g', -1, 64)}); err != nil {
			return fmt.Errorf("write csv: %w", err)
		}
	}
	writer.Flush()
	return writer.Error()
}

func writeNumbersJSON(w io.Writer, y []float64) error {
	enc := json.NewEncoder(w)
	return enc.Encode(y)
}
