package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/danudara/storefront/config"
	"github.com/danudara/storefront/lib/myhttpclient"
	"github.com/danudara/storefront/lib/mykv"
	"github.com/danudara/storefront/lib/mylog"
	"github.com/danudara/storefront/lib/mymetrics"
	"github.com/danudara/storefront/lib/mypublisher"
	"github.com/danudara/storefront/lib/mypubsub"
	"github.com/danudara/storefront/lib/myqueue"
	"github.com/danudara/storefront/lib/mytime"
	"github.com/danudara/storefront/lib/myuuid"
	"github.com/danudara/storefront/services/cart"
	"github.com/danudara/storefront/services/catalog"
	"github.com/danudara/storefront/services/catalog/catalogevents"
	"github.com/danudara/storefront/services/checkout"
	"github.com/danudara/storefront/services/cms"
	"github.com/danudara/storefront/services/i18n"
	"github.com/danudara/storefront/services/storefront"
)

func main() {
	c := context.Background()

	// a missing .env file is normal outside development
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Error loading config: %s", err)
	}
	logger := mylog.New("storefront")

	router := mux.NewRouter()

	storage, storageCleanup, err := mykv.New(c, mykv.Options{
		Backend:    cfg.KVBackend,
		SQLitePath: cfg.SQLitePath,
		RedisURL:   cfg.RedisURL,
		Namespace:  "storefront",
	})
	if err != nil {
		log.Fatalf("Error creating key-value store: %s", err)
	}
	defer storageCleanup()

	content := cms.NewClient(myhttpclient.New(map[string]string{
		"X-Master-Key": cfg.JSONBinAPIKey,
	}), cfg.JSONBinBaseURL, cfg.JSONBinBinID, mylog.New("cms"))
	if !cfg.CMSConfigured() {
		logger.Log(c, "", mylog.SeverityWarn, "No hosted content configured: serving built-in content")
	}

	translator := i18n.New(storage, cfg.LanguageKey, cfg.DefaultLanguage, content, mylog.New("i18n"))
	translator.Reload(c)

	notifications := storefront.NewNotificationSink()
	ct := cart.New(storage, cfg.CartKey, notifications, translator, mylog.New("cart"))
	ct.Load(c)

	pubsub, pubsubCleanup, err := mypubsub.New(c)
	if err != nil {
		log.Fatalf("Error creating pubsub: %s", err)
	}
	defer pubsubCleanup()

	queue, queueCleanup, err := myqueue.New(c)
	if err != nil {
		log.Fatalf("Error creating queue: %s", err)
	}
	defer queueCleanup()

	publisher, publisherCleanup, err := mypublisher.New(c, pubsub, queue, mytime.RealNower{})
	if err != nil {
		log.Fatalf("Error creating publisher: %s", err)
	}
	defer publisherCleanup()
	publisher.RegisterEndpoints(c, router)

	err = publisher.CreateTopic(c, catalogevents.TopicName)
	if err != nil {
		log.Fatalf("Error creating topic %s: %s", catalogevents.TopicName, err)
	}

	stores, storesCleanup, err := catalog.NewStores(c)
	if err != nil {
		log.Fatalf("Error creating catalog stores: %s", err)
	}
	defer storesCleanup()
	catalogService := catalog.New(stores, mytime.RealNower{}, myuuid.RealUUIDer{}, mylog.New("catalog"), publisher)

	metrics := mymetrics.New(prometheus.DefaultRegisterer)

	dispatcher := checkout.New(checkout.Options{
		Destination:        cfg.WhatsAppNumber,
		Production:         cfg.IsProd(),
		ClearAfterDispatch: cfg.ClearCartAfterCheckout,
		Message: checkout.MessageOptions{
			ShopName:       cfg.ShopName,
			CurrencySymbol: cfg.CurrencySymbol,
		},
	}, storefront.NavigationLauncher{}, notifications, translator, metrics, mylog.New("checkout"))

	webService := storefront.NewWebService(storefront.Options{
		BaseURL:        cfg.BaseURL,
		Currency:       cfg.Currency,
		CurrencySymbol: cfg.CurrencySymbol,
		AdminToken:     cfg.AdminToken,
	}, ct, catalogService, translator, content, dispatcher, notifications, pubsub, metrics)
	err = webService.RegisterEndpoints(c, router)
	if err != nil {
		log.Fatalf("Error registering storefront endpoints: %s", err)
	}

	startWebServerBlocking(cfg.Port, router)
}

func startWebServerBlocking(port string, router *mux.Router) {
	if port == "" {
		port = os.Getenv("PORT")
	}
	if port == "" {
		port = "8080"
	}

	log.Printf("Starting webserver on port %s (try http://localhost:%s)", port, port)
	err := http.ListenAndServe(fmt.Sprintf(":%s", port), router)
	if err != nil {
		log.Fatalf("Error starting webserver on port %s: %s", port, err)
	}
}
