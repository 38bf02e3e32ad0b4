package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// collectionIndexes declares the indexes each collection needs. The unique
// request_id index backs duplicate detection for generated request ids.
var collectionIndexes = map[string][]mongo.IndexModel{
	"Verification": {
		{
			Keys:    bson.D{{Key: "request_id", Value: 1}},
			Options: options.Index().SetName("request_id_unique").SetUnique(true),
		},
		{
			Keys:    bson.D{{Key: "owner_user_id", Value: 1}, {Key: "created_at", Value: -1}},
			Options: options.Index().SetName("owner_created_desc"),
		},
		{
			Keys:    bson.D{{Key: "status", Value: 1}},
			Options: options.Index().SetName("status"),
		},
		{
			Keys:    bson.D{{Key: "created_at", Value: -1}},
			Options: options.Index().SetName("created_desc"),
		},
	},
	"Crop": {
		{
			Keys:    bson.D{{Key: "user_id", Value: 1}},
			Options: options.Index().SetName("user_id"),
		},
	},
}

func main() {
	var (
		action     = flag.String("action", "create", "Action: create, list")
		uri        = flag.String("uri", "", "MongoDB URI (defaults to env DATABASE_URL)")
		dbName     = flag.String("db", "", "Database name (defaults to env DB_NAME)")
		collection = flag.String("collection", "", "Collection name (for list)")
		timeout    = flag.Duration("timeout", 60*time.Second, "Operation timeout")
		jsonOutput = flag.Bool("json", false, "Output in JSON format")
	)
	flag.Parse()

	mongoURI := *uri
	if mongoURI == "" {
		mongoURI = os.Getenv("DATABASE_URL")
		if mongoURI == "" {
			mongoURI = "mongodb://localhost:27017"
		}
	}

	database := *dbName
	if database == "" {
		database = os.Getenv("DB_NAME")
		if database == "" {
			log.Fatal("Database name required (use -db flag or DB_NAME env var)")
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(mongoURI))
	if err != nil {
		log.Fatal("Failed to connect to MongoDB:", err)
	}
	defer func() {
		if err = client.Disconnect(ctx); err != nil {
			log.Fatal("Failed to disconnect:", err)
		}
	}()

	if err = client.Ping(ctx, nil); err != nil {
		log.Fatal("Failed to ping MongoDB:", err)
	}

	db := client.Database(database)

	switch *action {
	case "create":
		if !*jsonOutput {
			fmt.Printf("Creating indexes in database: %s\n", database)
		}

		created := map[string][]string{}
		opCtx, opCancel := context.WithTimeout(context.Background(), *timeout)
		defer opCancel()

		for coll, indexModels := range collectionIndexes {
			names, err := db.Collection(coll).Indexes().CreateMany(opCtx, indexModels)
			if err != nil {
				log.Fatalf("Failed to create indexes for %s: %v", coll, err)
			}
			created[coll] = names
		}

		if *jsonOutput {
			outputJSON(map[string]any{
				"success": true,
				"created": created,
			})
		} else {
			for coll, names := range created {
				fmt.Printf("  %s: %v\n", coll, names)
			}
		}

	case "list":
		if *collection == "" {
			log.Fatal("Collection name required for list action (-collection flag)")
		}

		cursor, err := db.Collection(*collection).Indexes().List(ctx)
		if err != nil {
			log.Fatal("Failed to list indexes:", err)
		}

		var indexes []bson.M
		if err := cursor.All(ctx, &indexes); err != nil {
			log.Fatal("Failed to read indexes:", err)
		}

		if *jsonOutput {
			outputJSON(indexes)
		} else {
			fmt.Printf("Indexes for collection %s:\n", *collection)
			for _, idx := range indexes {
				if name, ok := idx["name"].(string); ok {
					fmt.Printf("  - %s\n", name)
					if key, ok := idx["key"]; ok {
						fmt.Printf("    Keys: %v\n", key)
					}
					if unique, ok := idx["unique"].(bool); ok && unique {
						fmt.Printf("    Unique: true\n")
					}
				}
			}
		}

	default:
		fmt.Printf("Unknown action: %s\n", *action)
		fmt.Println("Available actions: create, list")
		os.Exit(1)
	}
}

func outputJSON(data any) {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(data); err != nil {
		log.Fatal("Failed to encode JSON:", err)
	}
}
