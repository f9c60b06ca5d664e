// Command inspect_questions loads a question workbook the way the bot does
// and prints how many usable questions each sheet contributes.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"sort"

	"github.com/joho/godotenv"
	"github.com/trebekbot/trebekbot/internal/trivia"
)

func main() {
	_ = godotenv.Load()

	path := flag.String("file", os.Getenv("QUESTIONS_XLSX"), "path to the .xlsx question bank")
	flag.Parse()

	if *path == "" {
		log.Fatal("no workbook given: pass -file or set QUESTIONS_XLSX")
	}

	bank, err := trivia.LoadSpreadsheet(*path)
	if err != nil {
		log.Fatal(err)
	}

	counts := bank.SheetCounts()
	sheets := make([]string, 0, len(counts))
	for name := range counts {
		sheets = append(sheets, name)
	}
	sort.Strings(sheets)

	for _, name := range sheets {
		fmt.Printf("%-30s %d\n", name, counts[name])
	}
	fmt.Printf("Total: %d questions\n", bank.Len())
}
