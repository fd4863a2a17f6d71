package models

import "go.mongodb.org/mongo-driver/bson/primitive"

type Vendor struct {
	ID            primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	UserID        string             `json:"user_id" bson:"user_id"`
	Name          string             `json:"name" bson:"name"`
	Phone         string             `json:"phone" bson:"phone"`
	ShopName      string             `json:"shop_name,omitempty" bson:"shop_name,omitempty"`
	Address       string             `json:"address,omitempty" bson:"address,omitempty"`
	PersonalPhoto string             `json:"personal_photo,omitempty" bson:"personal_photo,omitempty"`
	AadharPhoto   string             `json:"aadhar_photo,omitempty" bson:"aadhar_photo,omitempty"`
	CartPhoto     string             `json:"cart_photo,omitempty" bson:"cart_photo,omitempty"`
}
