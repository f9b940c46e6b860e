package mongodb

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/empreweb/empreweb-backend/internal/content/domain"
)

type serviceDoc struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Titulo    string             `bson:"titulo"`
	Precio    string             `bson:"precio"`
	Desc      string             `bson:"desc"`
	Categoria string             `bson:"categoria"`
	Destacado bool               `bson:"destacado"`
}

func serviceToDoc(s domain.Service) serviceDoc {
	return serviceDoc{
		Titulo:    s.Title,
		Precio:    s.Price,
		Desc:      s.Description,
		Categoria: string(s.Category),
		Destacado: s.Featured,
	}
}

func (d serviceDoc) toDomain() domain.Service {
	return domain.Service{
		ID:          d.ID.Hex(),
		Title:       d.Titulo,
		Price:       d.Precio,
		Description: d.Desc,
		Category:    domain.Category(d.Categoria),
		Featured:    d.Destacado,
	}
}

type reviewDoc struct {
	ID         primitive.ObjectID `bson:"_id,omitempty"`
	Nombre     string             `bson:"nombre"`
	Comentario string             `bson:"comentario"`
	Estrellas  int                `bson:"estrellas"`
}

func reviewToDoc(r domain.Review) reviewDoc {
	return reviewDoc{Nombre: r.Name, Comentario: r.Comment, Estrellas: r.Rating}
}

func (d reviewDoc) toDomain() domain.Review {
	return domain.Review{ID: d.ID.Hex(), Name: d.Nombre, Comment: d.Comentario, Rating: d.Estrellas}
}

type contactDoc struct {
	ID      primitive.ObjectID `bson:"_id,omitempty"`
	Nombre  string             `bson:"nombre"`
	Email   string             `bson:"email"`
	Mensaje string             `bson:"mensaje"`
	Fecha   time.Time          `bson:"fecha"`
}

func contactToDoc(c domain.ContactSubmission) contactDoc {
	return contactDoc{Nombre: c.Name, Email: c.Email, Mensaje: c.Message, Fecha: c.CreatedAt}
}

// objectID parses a hex id. Malformed ids cannot match any stored record.
func objectID(id string) (primitive.ObjectID, bool) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, false
	}
	return oid, true
}
