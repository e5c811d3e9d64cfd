package handlers

import (
	"github.com/gin-gonic/gin"
)

// OperationStatus is the uniform envelope returned by every user operation.
type OperationStatus struct {
	Status  int         `json:"status"`
	Message string      `json:"message"`
	Result  interface{} `json:"result"`
}

const (
	MsgRecordFound    = "Record found"
	MsgNoRecordFound  = "No record found"
	MsgRecordCreated  = "Record created"
	MsgRecordUpdated  = "Record updated"
	MsgRecordDeleted  = "Record deleted"
	MsgConflict       = "Username or email already exists"
	MsgCouldNotCreate = "Could not create record"
	MsgCouldNotUpdate = "Could not update record"
	MsgCouldNotDelete = "Could not delete record"
	MsgCouldNotFetch  = "Could not fetch records"
	MsgInvalidRequest = "Missing or invalid request fields"
)

func respond(c *gin.Context, status int, message string, result interface{}) {
	c.JSON(status, OperationStatus{
		Status:  status,
		Message: message,
		Result:  result,
	})
}
