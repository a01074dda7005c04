package services

import (
	"bytes"
	"context"
	"encoding/json"
	"log"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esapi"

	"panel_catalogo/internal/models"
)

const productIndex = "products"

// Indexer mantiene el índice de búsqueda sincronizado con el catálogo.
// Es best-effort: un fallo de indexación nunca falla la operación de origen.
type Indexer interface {
	IndexProduct(p models.Product)
	RemoveProduct(id string)
}

type ElasticIndexer struct {
	client *elasticsearch.Client
}

func NewElasticIndexer(client *elasticsearch.Client) *ElasticIndexer {
	return &ElasticIndexer{client: client}
}

func (e *ElasticIndexer) IndexProduct(p models.Product) {
	if e.client == nil {
		log.Println("⚠️ Elastic no inicializado, no se indexa:", p.Name)
		return
	}

	data, _ := json.Marshal(p)
	req := esapi.IndexRequest{
		Index:      productIndex,
		DocumentID: p.ID.Hex(),
		Body:       bytes.NewReader(data),
		Refresh:    "true",
	}

	res, err := req.Do(context.Background(), e.client)
	if err != nil {
		log.Println("❌ Error envío Elastic:", err)
		return
	}
	defer res.Body.Close()

	if res.IsError() {
		log.Printf("⚠️ Elastic devolvió error para %s: %s", p.Name, res.String())
	}
}

func (e *ElasticIndexer) RemoveProduct(id string) {
	if e.client == nil {
		return
	}

	req := esapi.DeleteRequest{
		Index:      productIndex,
		DocumentID: id,
	}

	res, err := req.Do(context.Background(), e.client)
	if err != nil {
		log.Println("❌ Error borrado Elastic:", err)
		return
	}
	defer res.Body.Close()

	// 404 es normal si el producto nunca llegó a indexarse
	if res.IsError() && res.StatusCode != 404 {
		log.Printf("⚠️ Elastic devolvió error al borrar %s: %s", id, res.String())
	}
}
