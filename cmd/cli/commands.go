package main

import (
	"fmt"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/lmukoya96/FixedAssetsModule/internal/adapter/http/dto"
)

func assetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "asset",
		Short: "Asset operations",
	}

	var limit, offset int
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List assets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var resp dto.ListAssetsResponse
			query := url.Values{"limit": {strconv.Itoa(limit)}, "offset": {strconv.Itoa(offset)}}
			if err := newAPIClient().get("/api/v1/assets", query, &resp); err != nil {
				return err
			}
			printAssetTable(resp)
			return nil
		},
	}
	listCmd.Flags().IntVar(&limit, "limit", 50, "Page size")
	listCmd.Flags().IntVar(&offset, "offset", 0, "Page offset")

	getCmd := &cobra.Command{
		Use:   "get CODE",
		Short: "Show an asset",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return getAndPrint(assetPath(args[0], ""), nil)
		},
	}

	scheduleCmd := &cobra.Command{
		Use:   "schedule CODE",
		Short: "Regenerate the depreciation schedule of an asset",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return postAndPrint(assetPath(args[0], "/schedule"), nil)
		},
	}

	var newCost, period string
	revalueCmd := &cobra.Command{
		Use:   "revalue CODE",
		Short: "Revalue an asset from a period onwards",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return postAndPrint(assetPath(args[0], "/revaluations"), dto.RevalueAssetRequest{NewCost: newCost, Period: period})
		},
	}
	revalueCmd.Flags().StringVar(&newCost, "cost", "", "New cost")
	revalueCmd.Flags().StringVar(&period, "period", "", "Effective period (MM-YYYY)")
	_ = revalueCmd.MarkFlagRequired("cost")
	_ = revalueCmd.MarkFlagRequired("period")

	var scrapPeriod string
	scrapCmd := &cobra.Command{
		Use:   "scrap CODE",
		Short: "Scrap an asset",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return postAndPrint(assetPath(args[0], "/scrap"), dto.ScrapAssetRequest{Period: scrapPeriod})
		},
	}
	scrapCmd.Flags().StringVar(&scrapPeriod, "period", "", "Scrap period (MM-YYYY), defaults to the current period")

	var from, to string
	costsCmd := &cobra.Command{
		Use:   "costs CODE",
		Short: "Show the cost history of an asset",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return getAndPrint(assetPath(args[0], "/costs"), rangeQuery(from, to))
		},
	}
	depreciationCmd := &cobra.Command{
		Use:   "depreciation CODE",
		Short: "Show the depreciation history of an asset",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return getAndPrint(assetPath(args[0], "/depreciation"), rangeQuery(from, to))
		},
	}
	for _, c := range []*cobra.Command{costsCmd, depreciationCmd} {
		c.Flags().StringVar(&from, "from", "", "Range start date (YYYY-MM-DD)")
		c.Flags().StringVar(&to, "to", "", "Range end date (YYYY-MM-DD)")
	}

	transactionsCmd := &cobra.Command{
		Use:   "transactions CODE",
		Short: "Show the transaction log of an asset",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return getAndPrint(assetPath(args[0], "/transactions"), nil)
		},
	}

	var year int
	bookValueCmd := &cobra.Command{
		Use:   "book-value CODE",
		Short: "Show the book value of an asset at a year end",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return getAndPrint(assetPath(args[0], "/book-value"), url.Values{"year": {strconv.Itoa(year)}})
		},
	}
	bookValueCmd.Flags().IntVar(&year, "year", 0, "Financial year")
	_ = bookValueCmd.MarkFlagRequired("year")

	cmd.AddCommand(listCmd, getCmd, scheduleCmd, revalueCmd, scrapCmd, costsCmd, depreciationCmd, transactionsCmd, bookValueCmd)
	return cmd
}

func policyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "policy",
		Short: "Depreciation policy operations",
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List policies",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return getAndPrint("/api/v1/policies", nil)
		},
	}

	setRateCmd := &cobra.Command{
		Use:   "set-rate CODE RATE",
		Short: "Change a policy rate and recalculate its assets",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			var resp dto.ChangeRateResponse
			path := "/api/v1/policies/" + url.PathEscape(args[0]) + "/rate"
			if err := newAPIClient().do(http.MethodPut, path, dto.ChangeRateRequest{Rate: args[1]}, &resp); err != nil {
				return err
			}
			printJSON(resp)
			return nil
		},
	}

	cmd.AddCommand(listCmd, setRateCmd)
	return cmd
}

func reportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Reports",
	}

	var category, from, to string
	totalCmd := &cobra.Command{
		Use:   "total",
		Short: "Total depreciation, optionally by category and date range",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			query := rangeQuery(from, to)
			if category != "" {
				query.Set("category", category)
			}
			return getAndPrint("/api/v1/reports/depreciation-total", query)
		},
	}
	totalCmd.Flags().StringVar(&category, "category", "", "Asset category code")
	totalCmd.Flags().StringVar(&from, "from", "", "Range start date (YYYY-MM-DD)")
	totalCmd.Flags().StringVar(&to, "to", "", "Range end date (YYYY-MM-DD)")

	cmd.AddCommand(totalCmd)
	return cmd
}

func assetPath(code, suffix string) string {
	return "/api/v1/assets/" + url.PathEscape(code) + suffix
}

func rangeQuery(from, to string) url.Values {
	query := url.Values{}
	if from != "" {
		query.Set("from", from)
	}
	if to != "" {
		query.Set("to", to)
	}
	return query
}

func getAndPrint(path string, query url.Values) error {
	var resp any
	if err := newAPIClient().get(path, query, &resp); err != nil {
		return err
	}
	printJSON(resp)
	return nil
}

func postAndPrint(path string, body any) error {
	var resp any
	if err := newAPIClient().do(http.MethodPost, path, body, &resp); err != nil {
		return err
	}
	printJSON(resp)
	return nil
}

func printAssetTable(resp dto.ListAssetsResponse) {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "CODE\tDESCRIPTION\tGROUP\tCOST\tSTATUS")
	for _, a := range resp.Assets {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", a.Code, truncate(a.Description, 32), a.GroupCode, a.Cost.StringFixed(2), a.Status)
	}
	_ = w.Flush()
	fmt.Printf("%d of %d assets\n", len(resp.Assets), resp.Total)
}
