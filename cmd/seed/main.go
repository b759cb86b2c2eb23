package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"math"
	"math/rand"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/aliraza-dev/foodatlas-services/api/internal/config"
)

var cuisines = []string{
	"Indian", "Seafood", "Chinese", "Pakistani", "Fast Food",
	"Mediterranean", "Cafe", "Middle Eastern", "Italian", "Japanese",
}

var locations = []string{
	"Karachi", "Lahore", "Islamabad", "Rawalpindi", "Multan",
	"Hyderabad", "Quetta", "Peshawar", "Faisalabad",
}

var imageNames = []string{
	"restaurant1.png", "restaurant2.png", "restaurant3.png",
	"restaurant4.png", "restaurant5.png",
}

const imageBase = "/images/"
const batchSize = 1000

func main() {
	count := flag.Int("count", 200, "number of food places to insert")
	drop := flag.Bool("drop", false, "drop the collection before seeding")
	randomSeed := flag.Int64("seed", time.Now().UnixNano(), "random seed")
	flag.Parse()

	cfg := config.Load()
	rng := rand.New(rand.NewSource(*randomSeed))

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Timeout)
	defer cancel()

	clientOptions := options.Client().ApplyURI(cfg.MongoURI).SetServerAPIOptions(options.ServerAPI(options.ServerAPIVersion1))
	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		log.Fatalf("failed to connect to MongoDB: %v", err)
	}
	defer func() {
		if err := client.Disconnect(context.Background()); err != nil {
			log.Printf("error disconnecting MongoDB: %v", err)
		}
	}()

	collection := client.Database(cfg.MongoDatabase).Collection(cfg.PlaceCollection)

	if *drop {
		if err := collection.Drop(ctx); err != nil {
			log.Fatalf("failed to drop collection: %v", err)
		}
	}

	inserted := 0
	for inserted < *count {
		remaining := *count - inserted
		if remaining > batchSize {
			remaining = batchSize
		}

		docs := make([]interface{}, 0, remaining)
		for i := 0; i < remaining; i++ {
			docs = append(docs, randomPlace(rng, inserted+i+1))
		}

		insertCtx, insertCancel := context.WithTimeout(context.Background(), 30*time.Second)
		_, err := collection.InsertMany(insertCtx, docs)
		insertCancel()
		if err != nil {
			log.Fatalf("failed to insert seed batch: %v", err)
		}
		inserted += remaining
	}

	log.Printf("seeded %d food places into %s.%s", inserted, cfg.MongoDatabase, cfg.PlaceCollection)
}

func randomPlace(rng *rand.Rand, n int) bson.M {
	numImages := rng.Intn(3) + 1
	images := make([]string, 0, numImages)
	for i := 0; i < numImages; i++ {
		images = append(images, imageBase+imageNames[rng.Intn(len(imageNames))])
	}

	// Ratings between 2.5 and 5.0, one decimal place.
	rating := math.Round((rng.Float64()*2.5+2.5)*10) / 10

	now := time.Now().UTC()
	return bson.M{
		"_id":       primitive.NewObjectID(),
		"name":      fmt.Sprintf("Restaurant_%d", n),
		"cuisine":   cuisines[rng.Intn(len(cuisines))],
		"location":  locations[rng.Intn(len(locations))],
		"rating":    rating,
		"images":    images,
		"createdAt": now,
		"updatedAt": now,
	}
}
