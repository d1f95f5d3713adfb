package main

import (
	"fmt"
	"math/rand"
	"net/http"
	"sync"
	"time"
)

const (
	baseURL   = "http://localhost:8080/api/products"
	productID = "tbill-91"
)

var categories = []string{"", "government_security", "infrastructure_bond", "tokenized_equity"}

func main() {
	for {
		var wg sync.WaitGroup
		for range rand.Intn(10) {
			wg.Go(doRequest)
		}
		wg.Wait()
		time.Sleep(20 * time.Millisecond)
	}
}

func randomID(length int) string {
	chars := []rune("abcdefghijklmnopqrstuvwxyz0123456789")
	id := make([]rune, length)
	for i := range id {
		id[i] = chars[rand.Intn(len(chars))]
	}
	return string(id)
}

func targetURL() string {
	switch rand.Intn(5) {
	case 0:
		return baseURL + "/" + randomID(8)
	case 1:
		category := categories[rand.Intn(len(categories))]
		if category == "" {
			return baseURL
		}
		return baseURL + "?category=" + category
	default:
		return baseURL + "/" + productID
	}
}

func doRequest() {
	url := targetURL()
	resp, err := http.Get(url)
	if err != nil {
		fmt.Println("request failed:", err)
		return
	}
	fmt.Println("GET", url, "->", resp.Status)
	resp.Body.Close()
}
