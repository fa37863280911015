package record

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"bomkeeper/cmd/client/cmd/cmdutil"
	"bomkeeper/internal/domain/bom"
)

var errVendorFormat = errors.New("неверный формат поставщика")

// RecordCmd - родительская команда для всех операций с записями
var RecordCmd = &cobra.Command{
	Use:   "record",
	Short: "Управление записями BOM",
	Long:  `Просмотр, поиск, создание, изменение и удаление записей каталога.`,
}

// load загружает актуальную коллекцию перед любой командой
func load(cmd *cobra.Command) (*cmdutil.Env, error) {
	env, err := cmdutil.FromCommand(cmd)
	if err != nil {
		return nil, err
	}
	if _, err := env.App.LoadAll(cmd.Context()); err != nil {
		return nil, err
	}
	return env, nil
}

// parseVendor разбирает значение флага --vendor вида "имя,телефон,адрес".
// Запятая и "|" разделяют поля в таблице, поэтому внутри полей они запрещены.
func parseVendor(s string) (bom.Vendor, error) {
	if strings.Contains(s, "|") {
		return bom.Vendor{}, fmt.Errorf("%w: символ \"|\" недопустим", errVendorFormat)
	}
	parts := strings.Split(s, ",")
	if len(parts) > 3 {
		return bom.Vendor{}, fmt.Errorf("%w: ожидается не больше трех полей \"имя,телефон,адрес\", запятые внутри полей недопустимы", errVendorFormat)
	}

	v := bom.Vendor{Name: strings.TrimSpace(parts[0])}
	if len(parts) > 1 {
		v.Phone = strings.TrimSpace(parts[1])
	}
	if len(parts) > 2 {
		v.Address = strings.TrimSpace(parts[2])
	}
	return v, nil
}

func printRecord(rec bom.Record) {
	fmt.Printf("ID:           %s\n", rec.ID)
	fmt.Printf("Item code:    %s\n", rec.ItemCode)
	fmt.Printf("SKU:          %s\n", rec.SKU)
	fmt.Printf("Description:  %s\n", rec.ProductDescription)
	fmt.Printf("Category:     %s\n", rec.Category)
	fmt.Printf("Approx price: %s\n", rec.ApproxPrice)
	fmt.Printf("Order link:   %s\n", rec.OrderLink)

	if len(rec.Vendors) == 0 {
		fmt.Println("Vendors:      -")
		return
	}
	fmt.Println("Vendors:")
	for i, v := range rec.Vendors {
		fmt.Printf("  %d. %s | %s | %s\n", i+1, v.Name, v.Phone, v.Address)
	}
}
