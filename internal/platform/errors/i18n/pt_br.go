package i18n

var ptBRMessages = map[Code]string{
	CodeCellPolicyRejectsInitial: "A política {{.Policy}} não admite uma célula recém-inicializada",
	CodeCellPolicyViolation:      "A política {{.Policy}} rejeitou {{.Operation}}",
	CodeCellUseAfterDispose:      "A célula {{.CellID}} foi descartada",
	CodeCellDoubleDispose:        "A célula {{.CellID}} já havia sido descartada",
	CodeCellOperationInvalid:     "A operação {{.Operation}} não pode ser aplicada a uma célula ativa",
	CodeCellValueOverflow:        "{{.Operation}} levaria o valor {{.Value}} para fora do intervalo",
	CodeCellForeignToken:         "O token pertence à célula {{.TokenCellID}}, não a {{.CellID}}",
	CodeCellTokenAhead:           "O token observou {{.TokenLen}} operações mas a célula só tem {{.HistoryLen}}",
	CodeCellNonMonotonic:         "O valor regrediu de {{.Before}} para {{.After}}",
	CodePolicyUnknown:            "Política desconhecida: {{.Policy}}",
	CodePolicyInvalid:            "Definição de política inválida {{.Policy}}: {{.Reason}}",
	CodeCellIDInvalid:            "ID de célula inválido: {{.CellID}}",
	CodeNotFound:                 "{{.Resource}} não encontrado",
}
