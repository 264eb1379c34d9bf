package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/bgxgame/data-dict-backend/pkg/catalog"
	"github.com/bgxgame/data-dict-backend/pkg/embedding"
	"github.com/bgxgame/data-dict-backend/pkg/logging"
	"github.com/bgxgame/data-dict-backend/pkg/resolve"
	"github.com/bgxgame/data-dict-backend/pkg/store"
	"github.com/bgxgame/data-dict-backend/pkg/tokenizer"
	"github.com/bgxgame/data-dict-backend/pkg/vecindex"
	"github.com/bgxgame/data-dict-backend/pkg/vocab"
)

var (
	dbPath     string
	qdrantAddr string
	embedURL   string
	embedModel string
	verbose    bool
)

// env holds one fully wired stack for a single command invocation.
type env struct {
	store    *store.Store
	index    *vecindex.Qdrant
	gateway  *embedding.Gateway
	segments *tokenizer.Segmenter
	catalog  *catalog.Service
	resolver *resolve.Resolver
	searcher *resolve.Searcher
	log      logging.Logger
}

func (e *env) Close() {
	if e.index != nil {
		e.index.Close()
	}
	if e.store != nil {
		e.store.Close()
	}
}

func openEnv(ctx context.Context) (*env, error) {
	level := logging.LevelInfo
	if verbose {
		level = logging.LevelDebug
	}
	logger := logging.New(os.Stderr, level)

	st, err := store.New(dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open store: %w", err)
	}
	if err := st.Init(ctx); err != nil {
		st.Close()
		return nil, fmt.Errorf("failed to initialize store: %w", err)
	}

	index, err := vecindex.Dial(vecindex.Config{Addr: qdrantAddr})
	if err != nil {
		st.Close()
		return nil, fmt.Errorf("failed to connect to qdrant: %w", err)
	}
	if err := index.EnsureCollections(ctx); err != nil {
		index.Close()
		st.Close()
		return nil, fmt.Errorf("failed to ensure collections: %w", err)
	}

	cfg := embedding.DefaultHTTPConfig()
	if embedURL != "" {
		cfg.BaseURL = embedURL
	}
	if embedModel != "" {
		cfg.Model = embedModel
	}
	gateway := embedding.NewGateway(embedding.NewHTTPModel(cfg))

	segments, err := tokenizer.New()
	if err != nil {
		index.Close()
		st.Close()
		return nil, fmt.Errorf("failed to load segmenter dictionary: %w", err)
	}
	learned, err := segments.WarmUp(ctx, st)
	if err != nil {
		index.Close()
		st.Close()
		return nil, fmt.Errorf("failed to warm up segmenter: %w", err)
	}
	logger.Debug("segmenter warmed up", "terms", learned)

	return &env{
		store:    st,
		index:    index,
		gateway:  gateway,
		segments: segments,
		catalog:  catalog.New(st, index, gateway, segments, logger),
		resolver: resolve.NewResolver(st, segments, logger),
		searcher: resolve.NewSearcher(st, gateway, index, logger),
		log:      logger,
	}, nil
}

var rootCmd = &cobra.Command{
	Use:   "datadict",
	Short: "Controlled vocabulary service for data governance",
	Long:  `Manages standard word roots and fields across SQLite and Qdrant, with Chinese term resolution and hybrid search.`,
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize the database and vector collections",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		e, err := openEnv(ctx)
		if err != nil {
			return err
		}
		defer e.Close()

		fmt.Printf("Vocabulary database initialized at %s\n", dbPath)
		return nil
	},
}

var resyncCmd = &cobra.Command{
	Use:   "resync",
	Short: "Rebuild the vector index from the relational store",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		e, err := openEnv(ctx)
		if err != nil {
			return err
		}
		defer e.Close()

		roots, fields, err := e.catalog.ResyncAll(ctx)
		if err != nil {
			return fmt.Errorf("resync failed: %w", err)
		}
		fmt.Printf("Resynced %d roots and %d fields\n", roots, fields)
		return nil
	},
}

var wordRootCmd = &cobra.Command{
	Use:   "root",
	Short: "Manage word roots",
}

var rootAddCmd = &cobra.Command{
	Use:   "add <cn-name>",
	Short: "Add a word root",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		abbr, _ := cmd.Flags().GetString("abbr")
		full, _ := cmd.Flags().GetString("full")
		terms, _ := cmd.Flags().GetString("terms")
		remark, _ := cmd.Flags().GetString("remark")

		ctx := context.Background()
		e, err := openEnv(ctx)
		if err != nil {
			return err
		}
		defer e.Close()

		root, err := e.catalog.CreateRoot(ctx, vocab.RootInput{
			CnName:          args[0],
			EnAbbr:          abbr,
			EnFullName:      full,
			AssociatedTerms: terms,
			Remark:          remark,
		})
		if err != nil {
			return fmt.Errorf("failed to add root: %w", err)
		}
		fmt.Printf("Root '%s' added with id %d\n", root.CnName, root.ID)
		return nil
	},
}

var rootUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update a word root",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid id: %w", err)
		}
		cnName, _ := cmd.Flags().GetString("cn-name")
		abbr, _ := cmd.Flags().GetString("abbr")
		full, _ := cmd.Flags().GetString("full")
		terms, _ := cmd.Flags().GetString("terms")
		remark, _ := cmd.Flags().GetString("remark")

		ctx := context.Background()
		e, err := openEnv(ctx)
		if err != nil {
			return err
		}
		defer e.Close()

		root, err := e.catalog.UpdateRoot(ctx, id, vocab.RootInput{
			CnName:          cnName,
			EnAbbr:          abbr,
			EnFullName:      full,
			AssociatedTerms: terms,
			Remark:          remark,
		})
		if err != nil {
			return fmt.Errorf("failed to update root: %w", err)
		}
		fmt.Printf("Root %d updated: %s (%s)\n", root.ID, root.CnName, root.EnAbbr)
		return nil
	},
}

var rootGetCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Show a word root",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid id: %w", err)
		}

		ctx := context.Background()
		e, err := openEnv(ctx)
		if err != nil {
			return err
		}
		defer e.Close()

		root, err := e.catalog.GetRoot(ctx, id)
		if err != nil {
			return fmt.Errorf("failed to get root: %w", err)
		}

		outputJSON, _ := cmd.Flags().GetBool("json")
		if outputJSON {
			data, _ := json.MarshalIndent(root, "", "  ")
			fmt.Println(string(data))
			return nil
		}
		fmt.Printf("Root: %s (%s)\n", root.CnName, root.EnAbbr)
		if root.EnFullName != "" {
			fmt.Printf("  Full Name: %s\n", root.EnFullName)
		}
		if root.AssociatedTerms != "" {
			fmt.Printf("  Terms: %s\n", root.AssociatedTerms)
		}
		if root.Remark != "" {
			fmt.Printf("  Remark: %s\n", root.Remark)
		}
		return nil
	},
}

var rootDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a word root",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid id: %w", err)
		}

		ctx := context.Background()
		e, err := openEnv(ctx)
		if err != nil {
			return err
		}
		defer e.Close()

		if err := e.catalog.DeleteRoot(ctx, id); err != nil {
			return fmt.Errorf("failed to delete root: %w", err)
		}
		fmt.Printf("Root %d deleted\n", id)
		return nil
	},
}

var rootListCmd = &cobra.Command{
	Use:   "list",
	Short: "List word roots",
	RunE: func(cmd *cobra.Command, args []string) error {
		query, _ := cmd.Flags().GetString("query")
		offset, _ := cmd.Flags().GetInt("offset")
		limit, _ := cmd.Flags().GetInt("limit")

		ctx := context.Background()
		e, err := openEnv(ctx)
		if err != nil {
			return err
		}
		defer e.Close()

		roots, total, err := e.catalog.ListRoots(ctx, query, int64(offset), int64(limit))
		if err != nil {
			return fmt.Errorf("failed to list roots: %w", err)
		}

		outputJSON, _ := cmd.Flags().GetBool("json")
		if outputJSON {
			data, _ := json.MarshalIndent(roots, "", "  ")
			fmt.Println(string(data))
			return nil
		}
		fmt.Printf("Roots (%d of %d):\n", len(roots), total)
		for _, r := range roots {
			fmt.Printf("  %d. %s (%s)", r.ID, r.CnName, r.EnAbbr)
			if verbose && r.AssociatedTerms != "" {
				fmt.Printf(" terms: %s", r.AssociatedTerms)
			}
			fmt.Println()
		}
		return nil
	},
}

var rootImportCmd = &cobra.Command{
	Use:   "import <json-file>",
	Short: "Bulk import word roots from a JSON file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("failed to read file: %w", err)
		}
		var inputs []vocab.RootInput
		if err := json.Unmarshal(data, &inputs); err != nil {
			return fmt.Errorf("failed to parse JSON: %w", err)
		}

		ctx := context.Background()
		e, err := openEnv(ctx)
		if err != nil {
			return err
		}
		defer e.Close()

		result, err := e.catalog.ImportRoots(ctx, inputs)
		if err != nil {
			return fmt.Errorf("import failed: %w", err)
		}
		fmt.Printf("Imported %d roots, %d failed\n", result.SuccessCount, result.FailureCount)
		for _, msg := range result.Errors {
			fmt.Printf("  %s\n", msg)
		}
		return nil
	},
}

var rootClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete all word roots",
	RunE: func(cmd *cobra.Command, args []string) error {
		force, _ := cmd.Flags().GetBool("force")
		if !force {
			fmt.Print("Delete ALL word roots? [y/N]: ")
			var response string
			fmt.Scanln(&response)
			if response != "y" && response != "Y" {
				fmt.Println("Cancelled.")
				return nil
			}
		}

		ctx := context.Background()
		e, err := openEnv(ctx)
		if err != nil {
			return err
		}
		defer e.Close()

		if err := e.catalog.ClearRoots(ctx); err != nil {
			return fmt.Errorf("clear failed: %w", err)
		}
		fmt.Println("All word roots deleted")
		return nil
	},
}

var fieldCmd = &cobra.Command{
	Use:   "field",
	Short: "Manage standard fields",
}

var fieldAddCmd = &cobra.Command{
	Use:   "add <cn-name>",
	Short: "Add a standard field",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		enName, _ := cmd.Flags().GetString("en-name")
		composition, _ := cmd.Flags().GetString("composition")
		dataType, _ := cmd.Flags().GetString("data-type")
		terms, _ := cmd.Flags().GetString("terms")

		var ids []int64
		if composition != "" {
			for _, part := range strings.Split(composition, ",") {
				id, err := strconv.ParseInt(strings.TrimSpace(part), 10, 64)
				if err != nil {
					return fmt.Errorf("invalid composition id %q: %w", part, err)
				}
				ids = append(ids, id)
			}
		}

		ctx := context.Background()
		e, err := openEnv(ctx)
		if err != nil {
			return err
		}
		defer e.Close()

		field, err := e.catalog.CreateField(ctx, vocab.FieldInput{
			CnName:          args[0],
			EnName:          enName,
			CompositionIDs:  ids,
			DataType:        dataType,
			AssociatedTerms: terms,
		})
		if err != nil {
			return fmt.Errorf("failed to add field: %w", err)
		}
		fmt.Printf("Field '%s' added with id %d\n", field.CnName, field.ID)
		return nil
	},
}

var fieldUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update a standard field",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid id: %w", err)
		}
		cnName, _ := cmd.Flags().GetString("cn-name")
		enName, _ := cmd.Flags().GetString("en-name")
		composition, _ := cmd.Flags().GetString("composition")
		dataType, _ := cmd.Flags().GetString("data-type")
		terms, _ := cmd.Flags().GetString("terms")

		var ids []int64
		if composition != "" {
			for _, part := range strings.Split(composition, ",") {
				rid, err := strconv.ParseInt(strings.TrimSpace(part), 10, 64)
				if err != nil {
					return fmt.Errorf("invalid composition id %q: %w", part, err)
				}
				ids = append(ids, rid)
			}
		}

		ctx := context.Background()
		e, err := openEnv(ctx)
		if err != nil {
			return err
		}
		defer e.Close()

		field, err := e.catalog.UpdateField(ctx, id, vocab.FieldInput{
			CnName:          cnName,
			EnName:          enName,
			CompositionIDs:  ids,
			DataType:        dataType,
			AssociatedTerms: terms,
		})
		if err != nil {
			return fmt.Errorf("failed to update field: %w", err)
		}
		fmt.Printf("Field %d updated: %s (%s)\n", field.ID, field.CnName, field.EnName)
		return nil
	},
}

var fieldDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a standard field",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid id: %w", err)
		}

		ctx := context.Background()
		e, err := openEnv(ctx)
		if err != nil {
			return err
		}
		defer e.Close()

		if err := e.catalog.DeleteField(ctx, id); err != nil {
			return fmt.Errorf("failed to delete field: %w", err)
		}
		fmt.Printf("Field %d deleted\n", id)
		return nil
	},
}

var fieldGetCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Show a field and its composing roots",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid id: %w", err)
		}

		ctx := context.Background()
		e, err := openEnv(ctx)
		if err != nil {
			return err
		}
		defer e.Close()

		field, roots, err := e.catalog.FieldDetails(ctx, id)
		if err != nil {
			return fmt.Errorf("failed to get field: %w", err)
		}

		outputJSON, _ := cmd.Flags().GetBool("json")
		if outputJSON {
			data, _ := json.MarshalIndent(map[string]any{
				"field": field,
				"roots": roots,
			}, "", "  ")
			fmt.Println(string(data))
			return nil
		}
		fmt.Printf("Field: %s (%s)\n", field.CnName, field.EnName)
		fmt.Printf("  Data Type: %s\n", field.DataType)
		fmt.Printf("  Composition:\n")
		for _, r := range roots {
			fmt.Printf("    %d. %s (%s)\n", r.ID, r.CnName, r.EnAbbr)
		}
		return nil
	},
}

var fieldListCmd = &cobra.Command{
	Use:   "list",
	Short: "List standard fields",
	RunE: func(cmd *cobra.Command, args []string) error {
		query, _ := cmd.Flags().GetString("query")
		offset, _ := cmd.Flags().GetInt("offset")
		limit, _ := cmd.Flags().GetInt("limit")

		ctx := context.Background()
		e, err := openEnv(ctx)
		if err != nil {
			return err
		}
		defer e.Close()

		fields, total, err := e.catalog.ListFields(ctx, query, int64(offset), int64(limit))
		if err != nil {
			return fmt.Errorf("failed to list fields: %w", err)
		}

		outputJSON, _ := cmd.Flags().GetBool("json")
		if outputJSON {
			data, _ := json.MarshalIndent(fields, "", "  ")
			fmt.Println(string(data))
			return nil
		}
		fmt.Printf("Fields (%d of %d):\n", len(fields), total)
		for _, f := range fields {
			fmt.Printf("  %d. %s (%s)\n", f.ID, f.CnName, f.EnName)
		}
		return nil
	},
}

var fieldClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete all standard fields",
	RunE: func(cmd *cobra.Command, args []string) error {
		force, _ := cmd.Flags().GetBool("force")
		if !force {
			fmt.Print("Delete ALL standard fields? [y/N]: ")
			var response string
			fmt.Scanln(&response)
			if response != "y" && response != "Y" {
				fmt.Println("Cancelled.")
				return nil
			}
		}

		ctx := context.Background()
		e, err := openEnv(ctx)
		if err != nil {
			return err
		}
		defer e.Close()

		if err := e.catalog.ClearFields(ctx); err != nil {
			return fmt.Errorf("clear failed: %w", err)
		}
		fmt.Println("All standard fields deleted")
		return nil
	},
}

var suggestCmd = &cobra.Command{
	Use:   "suggest <text>",
	Short: "Resolve a phrase into word-root suggestions",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		e, err := openEnv(ctx)
		if err != nil {
			return err
		}
		defer e.Close()

		segments, err := e.resolver.Suggest(ctx, args[0])
		if err != nil {
			return fmt.Errorf("suggest failed: %w", err)
		}

		outputJSON, _ := cmd.Flags().GetBool("json")
		if outputJSON {
			data, _ := json.MarshalIndent(segments, "", "  ")
			fmt.Println(string(data))
			return nil
		}
		for _, seg := range segments {
			fmt.Printf("%s:\n", seg.Word)
			if len(seg.Candidates) == 0 {
				fmt.Println("  (no match)")
				continue
			}
			for _, c := range seg.Candidates {
				fmt.Printf("  %d. %s (%s)\n", c.ID, c.CnName, c.EnAbbr)
			}
		}
		return nil
	},
}

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search standard fields (lexical first, semantic fallback)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		e, err := openEnv(ctx)
		if err != nil {
			return err
		}
		defer e.Close()

		results, err := e.searcher.SearchFields(ctx, args[0])
		if err != nil {
			return fmt.Errorf("search failed: %w", err)
		}

		outputJSON, _ := cmd.Flags().GetBool("json")
		if outputJSON {
			data, _ := json.MarshalIndent(results, "", "  ")
			fmt.Println(string(data))
			return nil
		}
		fmt.Printf("Found %d results:\n", len(results))
		for i, r := range results {
			fmt.Printf("%d. %s (%s) [%s, score %.4f]\n", i+1, r.CnName, r.EnName, r.Source, r.Score)
		}
		return nil
	},
}

var similarCmd = &cobra.Command{
	Use:   "similar <query>",
	Short: "Find word roots similar in meaning to a query",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		e, err := openEnv(ctx)
		if err != nil {
			return err
		}
		defer e.Close()

		suggestions, err := e.searcher.SimilarRoots(ctx, args[0])
		if err != nil {
			return fmt.Errorf("similarity search failed: %w", err)
		}

		outputJSON, _ := cmd.Flags().GetBool("json")
		if outputJSON {
			data, _ := json.MarshalIndent(suggestions, "", "  ")
			fmt.Println(string(data))
			return nil
		}
		for i, s := range suggestions {
			fmt.Printf("%d. %s (%s) score %.4f\n", i+1, s.CnName, s.EnAbbr, s.Score)
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&dbPath, "db", "d", "vocab.db", "SQLite database file path")
	rootCmd.PersistentFlags().StringVar(&qdrantAddr, "qdrant", "localhost:6334", "Qdrant gRPC address")
	rootCmd.PersistentFlags().StringVar(&embedURL, "embed-url", "", "Embedding service base URL")
	rootCmd.PersistentFlags().StringVar(&embedModel, "embed-model", "", "Embedding model name")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose output")

	wordRootCmd.AddCommand(rootAddCmd, rootUpdateCmd, rootGetCmd, rootDeleteCmd, rootListCmd, rootImportCmd, rootClearCmd)
	rootAddCmd.Flags().String("abbr", "", "English abbreviation")
	rootAddCmd.Flags().String("full", "", "English full name")
	rootAddCmd.Flags().String("terms", "", "Associated terms (comma-separated)")
	rootAddCmd.Flags().String("remark", "", "Remark")
	_ = rootAddCmd.MarkFlagRequired("abbr")
	rootUpdateCmd.Flags().String("cn-name", "", "Chinese name")
	rootUpdateCmd.Flags().String("abbr", "", "English abbreviation")
	rootUpdateCmd.Flags().String("full", "", "English full name")
	rootUpdateCmd.Flags().String("terms", "", "Associated terms (comma-separated)")
	rootUpdateCmd.Flags().String("remark", "", "Remark")
	_ = rootUpdateCmd.MarkFlagRequired("cn-name")
	_ = rootUpdateCmd.MarkFlagRequired("abbr")
	rootGetCmd.Flags().Bool("json", false, "Output as JSON")
	rootListCmd.Flags().String("query", "", "Filter by name or abbreviation")
	rootListCmd.Flags().Int("offset", 0, "Page offset")
	rootListCmd.Flags().Int("limit", 20, "Page size")
	rootListCmd.Flags().Bool("json", false, "Output as JSON")
	rootClearCmd.Flags().Bool("force", false, "Skip confirmation prompt")

	fieldCmd.AddCommand(fieldAddCmd, fieldUpdateCmd, fieldDeleteCmd, fieldGetCmd, fieldListCmd, fieldClearCmd)
	fieldAddCmd.Flags().String("en-name", "", "English field name")
	fieldAddCmd.Flags().String("composition", "", "Composing root ids (comma-separated)")
	fieldAddCmd.Flags().String("data-type", "", "Data type")
	fieldAddCmd.Flags().String("terms", "", "Associated terms (comma-separated)")
	fieldUpdateCmd.Flags().String("cn-name", "", "Chinese field name")
	fieldUpdateCmd.Flags().String("en-name", "", "English field name")
	fieldUpdateCmd.Flags().String("composition", "", "Composing root ids (comma-separated)")
	fieldUpdateCmd.Flags().String("data-type", "", "Data type")
	fieldUpdateCmd.Flags().String("terms", "", "Associated terms (comma-separated)")
	_ = fieldUpdateCmd.MarkFlagRequired("cn-name")
	_ = fieldUpdateCmd.MarkFlagRequired("en-name")
	fieldGetCmd.Flags().Bool("json", false, "Output as JSON")
	fieldListCmd.Flags().String("query", "", "Filter by name or terms")
	fieldListCmd.Flags().Int("offset", 0, "Page offset")
	fieldListCmd.Flags().Int("limit", 20, "Page size")
	fieldListCmd.Flags().Bool("json", false, "Output as JSON")
	fieldClearCmd.Flags().Bool("force", false, "Skip confirmation prompt")

	suggestCmd.Flags().Bool("json", false, "Output as JSON")
	searchCmd.Flags().Bool("json", false, "Output as JSON")
	similarCmd.Flags().Bool("json", false, "Output as JSON")

	rootCmd.AddCommand(
		initCmd,
		resyncCmd,
		wordRootCmd,
		fieldCmd,
		suggestCmd,
		searchCmd,
		similarCmd,
	)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
