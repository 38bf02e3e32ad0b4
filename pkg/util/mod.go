package util

import (
	"context"
	"log"
	"os"
	"sync"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Initialize env vars
func LoadEnvFor(v string) (x string) {
	err := godotenv.Load()

	if err != nil {
		LogWarning("No .env file found, using environment variables")
	}

	x = os.Getenv(v)
	return
}

var (
	dbOnce   sync.Once
	dbClient *mongo.Client

	redisOnce   sync.Once
	redisClient *redis.Client
)

// Initialize mongo connection
func ConnectDB() (client *mongo.Client) {
	client, err := mongo.NewClient(options.Client().ApplyURI(LoadEnvFor("DATABASE_URL")))
	if err != nil {
		log.Fatal(err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	err = client.Connect(ctx)
	if err != nil {
		log.Fatal(err)
	}

	// try to ping the database
	err = client.Ping(ctx, nil)
	if err != nil {
		log.Fatal(err)
	}

	LogInfo("MongoDB connection successful")
	return
}

// DB returns the shared client, connecting on first use
func DB() *mongo.Client {
	dbOnce.Do(func() {
		dbClient = ConnectDB()
	})
	return dbClient
}

// GetCollection Get collection from Db
func GetCollection(client *mongo.Client, name string) (collection *mongo.Collection) {
	dbName := LoadEnvFor("DB_NAME")
	if dbName == "" {
		dbName = "oruagri"
	}
	collection = client.Database(dbName).Collection(name)
	return
}

// Initialize redis connection
func ConnectRedis() *redis.Client {
	// Connect to Redis
	redisUrl := LoadEnvFor("REDIS_URL")
	addr, err := redis.ParseURL(redisUrl)
	if err != nil {
		log.Fatal(err)
	}

	client := redis.NewClient(addr)

	LogInfo("redis connection successful..")
	return client
}

// REDIS returns the shared redis client, connecting on first use
func REDIS() *redis.Client {
	redisOnce.Do(func() {
		redisClient = ConnectRedis()
	})
	return redisClient
}
