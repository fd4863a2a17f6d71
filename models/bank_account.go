package models

import "go.mongodb.org/mongo-driver/bson/primitive"

type BankAccount struct {
	ID            primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	UserID        string             `json:"user_id" bson:"user_id"`
	HolderName    string             `json:"holder_name" bson:"holder_name"`
	BankName      string             `json:"bank_name" bson:"bank_name"`
	IFSC          string             `json:"ifsc,omitempty" bson:"ifsc,omitempty"`
	AccountNumber string             `json:"account_number" bson:"account_number"`
	PassbookPhoto string             `json:"passbook_photo,omitempty" bson:"passbook_photo,omitempty"`
}
