package sheet

import "bomkeeper/internal/domain/sheet"

type listInput struct {
	Sheet string `path:"sheet" example:"bom" doc:"Имя листа"`
}

type listOutput struct {
	Body []sheet.Row
}

type createInput struct {
	Sheet string `path:"sheet" example:"bom" doc:"Имя листа"`
	Body  createRequest
}

type createRequest struct {
	Data any `json:"data" doc:"Строка (объект) или массив строк"`
}

type createOutput struct {
	Body createdResponse
}

type createdResponse struct {
	Created int `json:"created"`
}

type matchInput struct {
	Sheet  string `path:"sheet" example:"bom" doc:"Имя листа"`
	Column string `path:"column" example:"id" doc:"Колонка для поиска строк"`
	Value  string `path:"value" example:"1" doc:"Значение колонки"`
}

type updateInput struct {
	Sheet  string `path:"sheet" example:"bom" doc:"Имя листа"`
	Column string `path:"column" example:"id" doc:"Колонка для поиска строк"`
	Value  string `path:"value" example:"1" doc:"Значение колонки"`
	Body   updateRequest
}

type updateRequest struct {
	Data map[string]any `json:"data" doc:"Поля, которые нужно изменить"`
}

type updateOutput struct {
	Body updatedResponse
}

type updatedResponse struct {
	Updated int `json:"updated"`
}

type deleteOutput struct {
	Body deletedResponse
}

type deletedResponse struct {
	Deleted int `json:"deleted"`
}
